// Package mailto builds the e-mail handoff a visitor's mail client opens after
// a successful form submission.
package mailto

import (
	"net/url"
	"strings"
	"time"
)

// StampLayout formats the submission date in the body.
const StampLayout = "1/2/2006, 3:04:05 PM"

// Section is a titled block of body lines. When names a field that must be
// non-empty for the section to appear.
type Section struct {
	Title string   `yaml:"title"`
	When  string   `yaml:"when"`
	Lines []string `yaml:"lines"`
}

// Template describes the mail generated for one form. Subject, Applicant and
// Lines use {field} and {field|fallback} placeholders.
type Template struct {
	Name              string    `yaml:"name"`
	Subject           string    `yaml:"subject"`
	Applicant         []string  `yaml:"applicant"`
	ApplicantFallback string    `yaml:"applicantFallback"`
	Sections          []Section `yaml:"sections"`
}

// Content is a rendered subject and body.
type Content struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Build renders tmpl for values, addressed to school and dated at.
func Build(school string, tmpl Template, values map[string]string, at time.Time) Content {
	name := tmpl.Name
	if name == "" {
		name = "Form Submission"
	}
	lower := strings.ToLower(name)

	var b strings.Builder
	b.WriteString("Dear " + school + ",\n\n")
	b.WriteString("I am writing to submit a " + lower + " through your website.\n\n")
	b.WriteString("SUBMISSION DETAILS:\n")
	b.WriteString("Form Type: " + name + "\n")
	b.WriteString("Submission Date: " + at.Format(StampLayout) + "\n\n")

	for _, section := range tmpl.Sections {
		if section.When != "" && values[section.When] == "" {
			continue
		}
		b.WriteString(section.Title + ":\n")
		for i, line := range section.Lines {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Expand(line, values))
		}
		b.WriteString("\n\n")
	}

	b.WriteString("\n\nReason for sending this email:\n")
	b.WriteString("This email contains my " + lower + " information submitted through your website. ")
	b.WriteString("I am requesting that you review my submission and respond accordingly. ")
	b.WriteString("Please confirm receipt of this information and let me know the next steps in the process.\n\n")
	b.WriteString("Thank you for your time and consideration.\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString(ApplicantName(tmpl, values) + "\n")
	b.WriteString("\n---\n")
	b.WriteString("This email was generated automatically from the " + school + " website form submission.")

	subject := Expand(tmpl.Subject, values)
	if subject == "" {
		subject = name + " - " + school
	}
	return Content{Subject: subject, Body: b.String()}
}

// ApplicantName returns the first applicant template that renders non-blank.
func ApplicantName(tmpl Template, values map[string]string) string {
	for _, candidate := range tmpl.Applicant {
		if name := strings.TrimSpace(Expand(candidate, values)); name != "" {
			return name
		}
	}
	if tmpl.ApplicantFallback != "" {
		return tmpl.ApplicantFallback
	}
	return "Form Submitter"
}

// Expand substitutes {field} and {field|fallback} placeholders. An unclosed
// brace is copied through.
func Expand(tmpl string, values map[string]string) string {
	var b strings.Builder
	rest := tmpl
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		closing := strings.IndexByte(rest[open:], '}')
		if closing < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		field, fallback, _ := strings.Cut(rest[open+1:open+closing], "|")
		if v := values[field]; v != "" {
			b.WriteString(v)
		} else {
			b.WriteString(fallback)
		}
		rest = rest[open+closing+1:]
	}
}

// URL returns the mailto link for content addressed to to.
func URL(to string, c Content) string {
	return "mailto:" + to + "?subject=" + EncodeComponent(c.Subject) + "&body=" + EncodeComponent(c.Body)
}

// ClipboardText is the copy-paste fallback when no mail client opens.
func ClipboardText(to string, c Content) string {
	return "To: " + to + "\nSubject: " + c.Subject + "\n\n" + c.Body
}

var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent escapes s the way browsers' encodeURIComponent does, which
// keeps ! ' ( ) * literal and writes spaces as %20.
func EncodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

package mailto

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enquiryTemplate = Template{
	Name:              "School Enquiry",
	Subject:           "School Enquiry - {subject|General Question} - Pinetown Independent Primary",
	Applicant:         []string{"{name}"},
	ApplicantFallback: "Enquirer",
	Sections: []Section{
		{Title: "ENQUIRY INFORMATION", Lines: []string{"Name: {name|Not provided}", "Phone: {phone|Not provided}"}},
		{Title: "NOTES", When: "notes", Lines: []string{"{notes}"}},
		{Title: "MESSAGE", Lines: []string{"{message|No message provided}"}},
	},
}

func TestExpand(t *testing.T) {
	values := map[string]string{"first": "Thandi", "last": ""}
	assert.Equal(t, "Hi Thandi ", Expand("Hi {first} {last}", values))
	assert.Equal(t, "Hi Guest", Expand("Hi {missing|Guest}", values))
	assert.Equal(t, "open {brace", Expand("open {brace", values))
}

func TestBuildLayout(t *testing.T) {
	at := time.Date(2025, 3, 4, 14, 5, 6, 0, time.UTC)
	content := Build("Pinetown Independent Primary School", enquiryTemplate, map[string]string{
		"name":    "Ayanda Mkhize",
		"message": "When does term start?",
	}, at)

	assert.Equal(t, "School Enquiry - General Question - Pinetown Independent Primary", content.Subject)
	assert.True(t, strings.HasPrefix(content.Body, "Dear Pinetown Independent Primary School,\n\nI am writing to submit a school enquiry through your website.\n\n"))
	assert.Contains(t, content.Body, "Submission Date: 3/4/2025, 2:05:06 PM\n\n")
	assert.Contains(t, content.Body, "ENQUIRY INFORMATION:\nName: Ayanda Mkhize\nPhone: Not provided\n\n")
	assert.NotContains(t, content.Body, "NOTES:")
	assert.Contains(t, content.Body, "MESSAGE:\nWhen does term start?\n\n")
	assert.Contains(t, content.Body, "Best regards,\nAyanda Mkhize\n\n---\n")
	assert.True(t, strings.HasSuffix(content.Body, "from the Pinetown Independent Primary School website form submission."))
}

func TestApplicantNameFallbacks(t *testing.T) {
	tmpl := Template{Applicant: []string{"{first} {last}", "{company}"}, ApplicantFallback: "Contact Person"}
	assert.Equal(t, "Lee Naidoo", ApplicantName(tmpl, map[string]string{"first": "Lee", "last": "Naidoo"}))
	assert.Equal(t, "Acme", ApplicantName(tmpl, map[string]string{"company": "Acme"}))
	assert.Equal(t, "Contact Person", ApplicantName(tmpl, nil))
	assert.Equal(t, "Form Submitter", ApplicantName(Template{}, nil))
}

func TestURLEncodesLikeEncodeURIComponent(t *testing.T) {
	c := Content{Subject: "Fees & dates (2025)!", Body: "Line one\nLine's two*"}
	link := URL("info@pinetownindependent.co.za", c)

	assert.Equal(t, "mailto:info@pinetownindependent.co.za?subject=Fees%20%26%20dates%20(2025)!&body=Line%20one%0ALine's%20two*", link)
	assert.NotContains(t, link, "+")

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, c.Subject, parsed.Query().Get("subject"))
	assert.Equal(t, c.Body, parsed.Query().Get("body"))
}

func TestClipboardText(t *testing.T) {
	text := ClipboardText("info@example.com", Content{Subject: "S", Body: "B"})
	assert.Equal(t, "To: info@example.com\nSubject: S\n\nB", text)
}

package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	emailPattern          = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern          = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	namePattern           = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	noSpecialCharsPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_\.]+$`)
	gradePattern          = regexp.MustCompile(`^grade-[r1-7]$`)
)

// Rule names understood in field definitions.
const (
	RuleRequired       = "required"
	RuleEmail          = "email"
	RulePhone          = "phone"
	RuleDate           = "date"
	RuleMinLength      = "minLength"
	RuleMaxLength      = "maxLength"
	RuleName           = "name"
	RuleNoSpecialChars = "noSpecialChars"
	RuleGrade          = "grade"
	RuleTextArea       = "textArea"
)

const (
	textAreaMin = 10
	textAreaMax = 1000
	phoneDigits = 10
)

type rule struct {
	hasParam bool
	check    func(value string, param int, now time.Time) bool
	message  func(param int) string
}

func fixed(msg string) func(int) string {
	return func(int) string { return msg }
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

var rules = map[string]rule{
	RuleRequired: {
		check:   func(v string, _ int, _ time.Time) bool { return strings.TrimSpace(v) != "" },
		message: fixed("This field is required"),
	},
	RuleEmail: {
		check:   func(v string, _ int, _ time.Time) bool { return emailPattern.MatchString(v) },
		message: fixed("Please enter a valid email address"),
	},
	RulePhone: {
		check:   func(v string, _ int, _ time.Time) bool { return IsPhone(v) },
		message: fixed("Please enter a valid phone number (at least 10 digits)"),
	},
	RuleDate: {
		check: func(v string, _ int, now time.Time) bool {
			t, ok := parseDate(v)
			return ok && t.Before(now)
		},
		message: fixed("Please enter a valid date in the past"),
	},
	RuleMinLength: {
		hasParam: true,
		check:    func(v string, n int, _ time.Time) bool { return runeLen(strings.TrimSpace(v)) >= n },
		message:  func(n int) string { return fmt.Sprintf("This field must be at least %d characters long", n) },
	},
	RuleMaxLength: {
		hasParam: true,
		check:    func(v string, n int, _ time.Time) bool { return runeLen(v) <= n },
		message:  func(n int) string { return fmt.Sprintf("This field must not exceed %d characters", n) },
	},
	RuleName: {
		check:   func(v string, _ int, _ time.Time) bool { return IsPersonName(v) },
		message: fixed("Please enter a valid name (letters, spaces, hyphens, and apostrophes only)"),
	},
	RuleNoSpecialChars: {
		check:   func(v string, _ int, _ time.Time) bool { return noSpecialCharsPattern.MatchString(v) },
		message: fixed("Special characters are not allowed except hyphens, underscores, and periods"),
	},
	RuleGrade: {
		check:   func(v string, _ int, _ time.Time) bool { return IsGradeLevel(v) },
		message: fixed("Please select a valid grade level"),
	},
	RuleTextArea: {
		check: func(v string, _ int, _ time.Time) bool {
			if v == "" {
				return true
			}
			n := runeLen(strings.TrimSpace(v))
			return n >= textAreaMin && n <= textAreaMax
		},
		message: fixed("Text must be between 10 and 1000 characters"),
	},
}

// IsPhone reports whether v uses only phone punctuation and has at least ten digits.
func IsPhone(v string) bool {
	if !phonePattern.MatchString(v) {
		return false
	}
	digits := 0
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= phoneDigits
}

// IsPersonName reports whether v is made of letters, spaces, hyphens,
// apostrophes and periods with at least two visible characters.
func IsPersonName(v string) bool {
	return namePattern.MatchString(v) && runeLen(strings.TrimSpace(v)) >= 2
}

// IsGradeLevel reports whether v is one of grade-r and grade-1 to grade-7.
func IsGradeLevel(v string) bool {
	return gradePattern.MatchString(v)
}

func parseDate(v string) (time.Time, bool) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// step is a compiled rule token.
type step struct {
	token string
	name  string
	param int
	rule  rule
}

func compileToken(token string) (step, error) {
	name, rawParam, hasParam := strings.Cut(strings.TrimSpace(token), ":")
	r, ok := rules[name]
	if !ok {
		return step{}, fmt.Errorf("unknown rule %q", name)
	}
	if r.hasParam != hasParam {
		if r.hasParam {
			return step{}, fmt.Errorf("rule %q requires a parameter", name)
		}
		return step{}, fmt.Errorf("rule %q takes no parameter", name)
	}
	s := step{token: token, name: name, rule: r}
	if hasParam {
		n, err := strconv.Atoi(rawParam)
		if err != nil || n < 0 {
			return step{}, fmt.Errorf("rule %q has invalid parameter %q", name, rawParam)
		}
		s.param = n
	}
	return s, nil
}

// Package naming derives the identifier variants used in generated NestJS code.
package naming

import (
	"regexp"
	"strings"
)

var (
	pascalBoundary = regexp.MustCompile(`(^\w|-\w)`)
	camelBoundary  = regexp.MustCompile(`-\w`)
	caseBoundary   = regexp.MustCompile(`([a-z])([A-Z])`)
	kebabSeparator = regexp.MustCompile(`[\s_]+`)
	snakeSeparator = regexp.MustCompile(`[\s-]+`)
)

// Forms holds every case variant of one name.
type Forms struct {
	// Raw is the normalized input the forms were derived from.
	Raw string `json:"raw" yaml:"raw"`

	// Pascal is used for class names (e.g., "UserProfile").
	Pascal string `json:"pascal" yaml:"pascal"`

	// Camel is used for property names (e.g., "userProfile").
	Camel string `json:"camel" yaml:"camel"`

	// Kebab is used for file and directory names (e.g., "user-profile").
	Kebab string `json:"kebab" yaml:"kebab"`

	// SnakeUpper is used for injection tokens (e.g., "USER_PROFILE").
	SnakeUpper string `json:"snakeUpper" yaml:"snakeUpper"`
}

// NewForms derives all case variants of name.
// name should already have passed Normalize.
func NewForms(name string) Forms {
	return Forms{
		Raw:        name,
		Pascal:     Pascal(name),
		Camel:      Camel(name),
		Kebab:      Kebab(name),
		SnakeUpper: SnakeUpper(name),
	}
}

// EntityForms derives forms for a free-form entity name. The casing forms
// are computed from the kebab-case form so word boundaries in raw survive:
// "UserProfile", "user_profile" and "user profile" all become UserProfile.
func EntityForms(raw string) Forms {
	forms := NewForms(Kebab(raw))
	forms.Raw = raw
	return forms
}

// Pascal lowercases s, then uppercases its first character and every word
// character that follows a hyphen, dropping the hyphen.
func Pascal(s string) string {
	return pascalBoundary.ReplaceAllStringFunc(strings.ToLower(s), func(m string) string {
		return strings.ToUpper(strings.TrimPrefix(m, "-"))
	})
}

// Camel is Pascal without uppercasing the first character.
func Camel(s string) string {
	return camelBoundary.ReplaceAllStringFunc(strings.ToLower(s), func(m string) string {
		return strings.ToUpper(m[1:])
	})
}

// Kebab splits lower-to-upper boundaries and whitespace/underscore runs with
// a hyphen and lowercases the result.
func Kebab(s string) string {
	s = caseBoundary.ReplaceAllString(s, "${1}-${2}")
	s = kebabSeparator.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// SnakeUpper splits lower-to-upper boundaries and whitespace/hyphen runs with
// an underscore and uppercases the result.
func SnakeUpper(s string) string {
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	s = snakeSeparator.ReplaceAllString(s, "_")
	return strings.ToUpper(s)
}

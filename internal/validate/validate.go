// Package validate implements declarative field validation: a schema is a
// set of rules per field, a rule is a predicate plus the message rendered
// when it fails. Fields are checked independently and the first failing
// rule per field wins, so a caller can show one message next to each input.
package validate

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Values is a candidate input keyed by field name. Boolean inputs such as
// terms acceptance are passed as "true"/"false".
type Values map[string]string

// Errors maps field names to the first violated rule's message. It is
// returned as an error value so state modules can surface a failed
// validation without panicking or logging.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed:")
	for _, f := range fields {
		b.WriteString(" " + f + ": " + e[f] + ";")
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Rule is a single predicate+message pair.
type Rule struct {
	check   func(value string, all Values) bool
	message string
}

// Schema maps field names to their rule chains.
type Schema map[string][]Rule

// Validate evaluates every field's chain against v. It returns nil when
// all rules pass; there is no partial success.
func (s Schema) Validate(v Values) Errors {
	errs := make(Errors)
	for field, rules := range s {
		for _, r := range rules {
			if !r.check(v[field], v) {
				errs[field] = r.message
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// emailPattern matches the usual local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var digitsPattern = regexp.MustCompile(`^[0-9]+$`)

// Required fails on empty or whitespace-only input. Every other rule
// passes on empty input so optional fields stay optional while still
// being constrained when present.
func Required(msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return strings.TrimSpace(v) != "" },
		message: msg,
	}
}

// Email fails unless the value looks like local@domain.tld.
func Email(msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return v == "" || emailPattern.MatchString(v) },
		message: msg,
	}
}

// MinLen fails when the value is shorter than n characters.
func MinLen(n int, msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return v == "" || len([]rune(v)) >= n },
		message: msg,
	}
}

// MaxLen fails when the value is longer than n characters.
func MaxLen(n int, msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return len([]rune(v)) <= n },
		message: msg,
	}
}

// Len fails unless the value is exactly n characters.
func Len(n int, msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return v == "" || len([]rune(v)) == n },
		message: msg,
	}
}

// Digits fails when the value contains anything but 0-9.
func Digits(msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return v == "" || digitsPattern.MatchString(v) },
		message: msg,
	}
}

// Date fails unless the value parses as a 2006-01-02 date.
func Date(msg string) Rule {
	return Rule{
		check: func(v string, _ Values) bool {
			if v == "" {
				return true
			}
			_, err := time.Parse("2006-01-02", v)
			return err == nil
		},
		message: msg,
	}
}

// OneOf fails unless the value is one of the listed options.
func OneOf(options []string, msg string) Rule {
	return Rule{
		check: func(v string, _ Values) bool {
			if v == "" {
				return true
			}
			for _, o := range options {
				if v == o {
					return true
				}
			}
			return false
		},
		message: msg,
	}
}

// EqualTo fails unless the value equals the named other field.
func EqualTo(field, msg string) Rule {
	return Rule{
		check:   func(v string, all Values) bool { return v == all[field] },
		message: msg,
	}
}

// True fails unless the value is the literal "true". Used for
// must-accept checkboxes.
func True(msg string) Rule {
	return Rule{
		check:   func(v string, _ Values) bool { return v == "true" },
		message: msg,
	}
}

package validators

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Rule is a single predicate over a present field value.
type Rule struct {
	Check   func(string) bool
	Message string
}

// FieldRules groups the ordered rules of one field.
//
// When Value returns nil the field was absent: a non-nullable field reports
// "<Model>.<field> cannot be null" and its rules are skipped.
type FieldRules[T any] struct {
	Field    string
	Nullable bool
	Value    func(T) *string
	Rules    []Rule
}

// RuleSet is the ordered list of field rules of one model.
type RuleSet[T any] struct {
	Model  string
	Fields []FieldRules[T]
}

// Evaluate runs the rules of the requested fields (all when none are given)
// and returns every failing message in declaration order.
func (s RuleSet[T]) Evaluate(obj T, fields ...string) ([]string, error) {
	selected, err := s.selectFields(fields)
	if err != nil {
		return nil, err
	}

	var messages []string
	for _, f := range selected {
		value := f.Value(obj)
		if value == nil {
			if !f.Nullable {
				messages = append(messages, fmt.Sprintf("%s.%s cannot be null", s.Model, f.Field))
			}
			continue
		}

		for _, rule := range f.Rules {
			if !rule.Check(*value) {
				messages = append(messages, rule.Message)
			}
		}
	}

	return messages, nil
}

func (s RuleSet[T]) selectFields(fields []string) ([]FieldRules[T], error) {
	if len(fields) == 0 {
		return s.Fields, nil
	}

	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	selected := make([]FieldRules[T], 0, len(fields))
	for _, f := range s.Fields {
		if wanted[f.Field] {
			selected = append(selected, f)
			delete(wanted, f.Field)
		}
	}

	if len(wanted) > 0 {
		return nil, ErrUnknownField
	}

	return selected, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NotEmpty fails on the empty string.
func NotEmpty(message string) Rule {
	return Rule{
		Check:   func(s string) bool { return s != "" },
		Message: message,
	}
}

// IsEmail fails when the value is not shaped like an email address.
func IsEmail(message string) Rule {
	return Rule{
		Check:   func(s string) bool { return validate.Var(s, "email") == nil },
		Message: message,
	}
}

// Len fails when the value has fewer than minLen or more than maxLen characters.
func Len(minLen, maxLen int, message string) Rule {
	return Rule{
		Check: func(s string) bool {
			n := utf8.RuneCountInString(s)
			return n >= minLen && n <= maxLen
		},
		Message: message,
	}
}


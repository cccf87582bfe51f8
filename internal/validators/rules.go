package validators

import (
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Rule is one predicate on a field value with the message reported when
// the predicate fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Chain is the ordered list of rules for one field. Evaluation stops at
// the first failing rule.
type Chain struct {
	Field string
	Rules []Rule
}

// Required fails on the empty string. Whitespace counts as content.
func Required(message string) Rule {
	return Rule{Check: func(v string) bool { return v != "" }, Message: message}
}

// MaxLength fails when value has more than n characters.
func MaxLength(n int, message string) Rule {
	return Rule{Check: func(v string) bool { return utf8.RuneCountInString(v) <= n }, Message: message}
}

// MinLength fails when value has fewer than n characters.
func MinLength(n int, message string) Rule {
	return Rule{Check: func(v string) bool { return utf8.RuneCountInString(v) >= n }, Message: message}
}

// check runs chains over values in chain order. fields, when non-empty,
// restricts evaluation to the named chains. The result is nil when every
// chain passes and a [models.ValidationErrors] otherwise.
func check(chains []Chain, values map[string]string, fields ...string) error {
	selected, err := selectChains(chains, fields)
	if err != nil {
		return err
	}

	var errs models.ValidationErrors
	for _, chain := range selected {
		value := values[chain.Field]
		for _, rule := range chain.Rules {
			if !rule.Check(value) {
				errs = append(errs, models.FieldError{Field: chain.Field, Message: rule.Message})
				break
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func selectChains(chains []Chain, fields []string) ([]Chain, error) {
	if len(fields) == 0 {
		return chains, nil
	}

	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[f] = true
	}

	selected := make([]Chain, 0, len(fields))
	for _, chain := range chains {
		if wanted[chain.Field] {
			selected = append(selected, chain)
			delete(wanted, chain.Field)
		}
	}

	for f := range wanted {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
	}

	return selected, nil
}

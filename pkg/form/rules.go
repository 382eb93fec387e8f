package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// rules returns the ordered rules for f. The first failing rule decides the
// field's state, so required comes before format on empty values and kind
// rules only run on non-empty ones.
func (e *Engine) rules(f *Field, snap Snapshot) []validator.Rule {
	name := f.desc.Name

	if f.desc.Kind == KindTerms {
		return []validator.Rule{validator.TermsAccepted(name, f.checked)}
	}

	if f.Empty() {
		var rules []validator.Rule
		if f.desc.Required {
			rules = append(rules, validator.RequiredString(name, f.value))
		}
		if f.desc.Kind == KindConfirmPassword {
			rules = append(rules, e.matchRule(f, snap))
		}
		return rules
	}

	switch f.desc.Kind {
	case KindEmail:
		return []validator.Rule{validator.ValidEmail(name, f.value)}
	case KindUsername:
		return []validator.Rule{validator.ValidUsername(name, f.value)}
	case KindBirthdate:
		return []validator.Rule{validator.ValidBirthdate(name, f.value, e.now())}
	case KindConfirmPassword:
		return []validator.Rule{e.matchRule(f, snap)}
	default:
		return nil
	}
}

func (e *Engine) matchRule(confirm *Field, snap Snapshot) validator.Rule {
	password, ok := snap.First(KindPassword)
	if !ok {
		return validator.Valid
	}
	return validator.PasswordsMatch(confirm.desc.Name, password.Text, confirm.value, e.strict)
}

// evaluate runs f's rules and stores the outcome on the field.
func (e *Engine) evaluate(f *Field, snap Snapshot) {
	verr, failed := validator.First(e.rules(f, snap)...)
	if failed {
		f.state = StateInvalid
		f.failure = verr
	} else {
		f.state = StateValid
		f.failure = validator.ValidationError{}
	}

	e.observer.ObserveEvaluation(Evaluation{
		Form:  e.name,
		Field: f.desc.Name,
		Kind:  f.desc.Kind,
		State: f.state,
		Code:  f.failure.Code,
	})
}

// check evaluates f without touching its stored state.
func (e *Engine) check(f *Field, snap Snapshot) bool {
	_, failed := validator.First(e.rules(f, snap)...)
	return !failed
}

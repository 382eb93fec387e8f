package form

import "github.com/dmitrymomot/formkit/pkg/validator"

// Evaluation is reported to observers every time a field's rules run.
type Evaluation struct {
	Form  string
	Field string
	Kind  Kind
	State State
	Code  validator.Code
}

// Observer receives evaluation and submit outcomes, e.g. for metrics.
// Implementations must be cheap; they run inside the event handler.
type Observer interface {
	ObserveEvaluation(Evaluation)
	ObserveSubmit(form string, accepted bool)
}

type noopObserver struct{}

func (noopObserver) ObserveEvaluation(Evaluation) {}
func (noopObserver) ObserveSubmit(string, bool)   {}

package form

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// EventKind is a field notification from the hosting page.
type EventKind string

const (
	// EventChange is a value change (typing, pasting, toggling a checkbox).
	EventChange EventKind = "change"
	// EventBlur is the field losing focus.
	EventBlur EventKind = "blur"
)

// ParseEvent maps an event name to its kind. "input" is accepted as change.
func ParseEvent(s string) (EventKind, error) {
	switch s {
	case "change", "input":
		return EventChange, nil
	case "blur":
		return EventBlur, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEvent, s)
	}
}

// Engine validates one form instance. It owns the FormState and is the only
// thing that mutates it. Engine is not safe for concurrent use; callers
// serialize events per instance.
type Engine struct {
	name     string
	state    *FormState
	messages Messages
	now      func() time.Time
	strict   bool
	logger   *slog.Logger
	observer Observer

	// last submit gate reported to the adapter, used only for SubmitChanged
	lastSubmittable bool
}

// SubmitResult is the outcome of an explicit submit attempt.
type SubmitResult struct {
	Accepted bool
	Diff     Diff
	Errors   validator.ValidationErrors
}

// New attaches an engine to a form with the given fields in declaration order.
func New(name string, fields []Descriptor, opts ...Option) (*Engine, error) {
	state, err := newFormState(fields)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		name:     name,
		state:    state,
		messages: DefaultMessages(),
		now:      time.Now,
		logger:   slog.New(noopHandler{}),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lastSubmittable = e.Submittable()

	return e, nil
}

// NewFromDefinition attaches an engine to a loaded definition. Options passed
// here override the definition's settings.
func NewFromDefinition(def Definition, opts ...Option) (*Engine, error) {
	base := []Option{
		WithMessages(def.Messages),
		WithStrictPasswordMatch(def.StrictPasswordMatch),
	}
	return New(def.Name, def.Fields, append(base, opts...)...)
}

func (e *Engine) Name() string { return e.name }

// State exposes the form state for reading.
func (e *Engine) State() *FormState { return e.state }

// Messages returns the effective message catalog.
func (e *Engine) Messages() Messages { return e.messages }

// Submittable reports whether the form may be submitted right now. It runs
// every rule against the current values on each call.
func (e *Engine) Submittable() bool {
	snap := e.state.Snapshot()
	for _, f := range e.state.fields {
		if !e.check(f, snap) {
			return false
		}
	}
	return true
}

// Initial returns the diff an adapter applies when it attaches: the submit
// gate and the strength indicator, with no field displays.
func (e *Engine) Initial() Diff {
	d := Diff{
		Submittable:   e.Submittable(),
		SubmitChanged: true,
	}
	e.lastSubmittable = d.Submittable
	if pw, ok := e.state.firstOfKind(KindPassword); ok {
		d.Strength = e.strength(pw.value)
	}
	return d
}

// HandleFieldEvent applies one event and returns what changed. For change
// events raw is sanitized and stored; for blur events raw must be the current
// input value and, when it differs from the stored one, is processed as a
// change first.
func (e *Engine) HandleFieldEvent(name string, event EventKind, raw string) (Diff, error) {
	f, ok := e.state.lookup(name)
	if !ok {
		return Diff{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	var changed, rewritten bool
	switch event {
	case EventChange:
		changed, rewritten = e.assign(f, raw)
	case EventBlur:
		if e.differs(f, raw) {
			changed, rewritten = e.assign(f, raw)
		}
	default:
		return Diff{}, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	f.touched = true

	var d Diff
	snap := e.state.Snapshot()

	e.evaluate(f, snap)
	d.Fields = append(d.Fields, e.report(f, e.displayFor(f, event), rewritten))

	if dep, ok := e.dependent(f); ok {
		e.evaluate(dep, snap)
		if dep.touched || !dep.Empty() {
			d.Fields = append(d.Fields, e.report(dep, e.dependentDisplay(dep), false))
		}
	}

	if f.desc.Kind == KindPassword && (changed || event == EventChange) {
		d.Strength = e.strength(f.value)
	}

	e.gate(&d)

	e.logger.Debug("form field event",
		logger.Form(e.name),
		logger.Field(name),
		logger.Event(string(event)),
		slog.String("state", f.state.String()),
		slog.Bool("submittable", d.Submittable),
	)

	return d, nil
}

// Submit re-runs every rule for every field, reports all failures at once and
// names the first failing field in declaration order as the focus target.
func (e *Engine) Submit() SubmitResult {
	var res SubmitResult
	snap := e.state.Snapshot()

	for _, f := range e.state.fields {
		f.touched = true
		e.evaluate(f, snap)

		display := DisplayValid
		if f.state == StateInvalid {
			display = DisplayInvalid
			verr := f.failure
			verr.Message = e.messages.For(f.desc.Kind, verr)
			res.Errors.Add(verr)
			if res.Diff.Focus == "" {
				res.Diff.Focus = f.desc.Name
			}
		}
		res.Diff.Fields = append(res.Diff.Fields, e.report(f, display, false))
	}

	e.gate(&res.Diff)
	res.Accepted = res.Errors.IsEmpty()
	e.observer.ObserveSubmit(e.name, res.Accepted)

	e.logger.Debug("form submit",
		logger.Form(e.name),
		slog.Bool("accepted", res.Accepted),
		slog.Any("failed_fields", res.Errors.Fields()),
	)

	return res
}

// Refresh re-evaluates every touched field against the current clock and
// sibling values. Displays already showing an error keep showing it; others
// follow the typing policy. Calling Refresh twice yields the same result.
func (e *Engine) Refresh() Diff {
	var d Diff
	snap := e.state.Snapshot()

	for _, f := range e.state.fields {
		if !f.touched {
			continue
		}
		e.evaluate(f, snap)

		display := e.displayFor(f, EventChange)
		if f.state == StateInvalid && f.display == DisplayInvalid {
			display = DisplayInvalid
		}
		d.Fields = append(d.Fields, e.report(f, display, false))
	}

	e.gate(&d)
	return d
}

// Load replaces every field value without touching them, as when a plain
// HTML form is posted. Missing keys clear the field.
func (e *Engine) Load(values map[string]string) {
	for _, f := range e.state.fields {
		e.assign(f, values[f.desc.Name])
	}
}

// Values returns the stored (sanitized) values keyed by field name.
// Checkbox fields are reported as "true" or "false".
func (e *Engine) Values() map[string]string {
	out := make(map[string]string, len(e.state.fields))
	for _, f := range e.state.fields {
		out[f.desc.Name] = fieldValue(f)
	}
	return out
}

func (e *Engine) assign(f *Field, raw string) (changed, rewritten bool) {
	if f.desc.Kind.Checkbox() {
		checked := ParseChecked(raw)
		changed = checked != f.checked
		f.checked = checked
		return changed, false
	}

	value := raw
	if sanitize := f.desc.Kind.sanitize(); sanitize != nil {
		value = sanitize(raw)
	}
	changed = value != f.value
	f.value = value
	return changed, value != raw
}

func (e *Engine) differs(f *Field, raw string) bool {
	if f.desc.Kind.Checkbox() {
		return ParseChecked(raw) != f.checked
	}
	return raw != f.value
}

func (e *Engine) dependent(f *Field) (*Field, bool) {
	kind, ok := f.desc.Kind.counterpart()
	if !ok {
		return nil, false
	}
	return e.state.firstOfKind(kind)
}

// displayFor applies the typing policy: errors show on blur, format errors of
// eager kinds also show while typing, required errors never do.
func (e *Engine) displayFor(f *Field, event EventKind) Display {
	if f.state == StateValid {
		return DisplayValid
	}
	if event == EventBlur {
		return DisplayInvalid
	}
	if f.failure.Code == validator.CodeRequired || !f.desc.Kind.eager() {
		return DisplayNone
	}
	return DisplayInvalid
}

// dependentDisplay decides how a cross-field dependent is shown when its
// sibling changed. Mismatches show at once; a pending required error is only
// kept if it was already visible.
func (e *Engine) dependentDisplay(f *Field) Display {
	switch {
	case f.state == StateValid && f.touched:
		return DisplayValid
	case f.state == StateValid:
		return DisplayNone
	case f.failure.Code == validator.CodeRequired && f.display != DisplayInvalid:
		return DisplayNone
	default:
		return DisplayInvalid
	}
}

// report stores the display on the field and returns its update.
func (e *Engine) report(f *Field, display Display, rewritten bool) FieldUpdate {
	var msg string
	if display == DisplayInvalid {
		msg = e.messages.For(f.desc.Kind, f.failure)
	}
	f.display = display
	f.slot = msg

	u := FieldUpdate{
		Name:      f.desc.Name,
		Kind:      f.desc.Kind,
		State:     f.state,
		Display:   display,
		Message:   msg,
		Value:     fieldValue(f),
		Rewritten: rewritten,
		Attention: display == DisplayInvalid,
	}
	if f.state == StateInvalid {
		u.Code = f.failure.Code
	}
	return u
}

func (e *Engine) gate(d *Diff) {
	d.Submittable = e.Submittable()
	d.SubmitChanged = d.Submittable != e.lastSubmittable
	e.lastSubmittable = d.Submittable
}

func (e *Engine) strength(password string) *StrengthUpdate {
	s := validator.PasswordStrength(password)
	label := e.messages.StrengthLabel(s.Tier)
	if password == "" {
		label = e.messages.StrengthPrompt
	}
	return &StrengthUpdate{
		Score:    s.Score,
		Tier:     s.Tier,
		Fraction: s.Fraction,
		Label:    label,
	}
}

func fieldValue(f *Field) string {
	if f.desc.Kind.Checkbox() {
		return strconv.FormatBool(f.checked)
	}
	return f.value
}

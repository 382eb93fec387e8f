package signup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// DatastarScript is the client bundle the page loads.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

type fieldView struct {
	Name      string
	Label     string
	Kind      form.Kind
	Required  bool
	Value     string
	Checked   bool
	Message   string
	Display   form.Display
	InputType string
}

type pageView struct {
	ID          string
	Title       string
	Action      string
	EventBase   string
	SubmitURL   string
	Fields      []fieldView
	Submittable bool
	Strength    *form.StrengthUpdate
	Focus       string
}

func (s *Service) pageView(id uuid.UUID, e *form.Engine, d form.Diff) pageView {
	base := s.basePath + "/" + id.String()
	v := pageView{
		ID:          id.String(),
		Title:       e.Name(),
		Action:      s.basePath + "/submit",
		EventBase:   base + "/fields/",
		SubmitURL:   base + "/submit",
		Submittable: d.Submittable,
		Strength:    d.Strength,
		Focus:       d.Focus,
	}

	for _, f := range e.State().Fields() {
		label := f.Label()
		if label == "" {
			label = f.Name()
		}
		v.Fields = append(v.Fields, fieldView{
			Name:      f.Name(),
			Label:     label,
			Kind:      f.Kind(),
			Required:  f.Required(),
			Value:     f.Value(),
			Checked:   f.Checked(),
			Message:   f.Slot(),
			Display:   f.Display(),
			InputType: inputType(f.Kind()),
		})
	}
	return v
}

func inputType(k form.Kind) string {
	switch k {
	case form.KindPassword, form.KindConfirmPassword:
		return "password"
	case form.KindTerms:
		return "checkbox"
	default:
		return "text"
	}
}

// initialSignals seeds the client store so the page and later patches agree.
func (v pageView) initialSignals() string {
	values := make(map[string]any, len(v.Fields))
	errs := make(map[string]any, len(v.Fields))
	valid := make(map[string]any, len(v.Fields))
	invalid := make(map[string]any, len(v.Fields))
	attention := make(map[string]any, len(v.Fields))
	for _, f := range v.Fields {
		if f.Kind.Checkbox() {
			values[f.Name] = f.Checked
		} else {
			values[f.Name] = f.Value
		}
		errs[f.Name] = f.Message
		valid[f.Name] = f.Display == form.DisplayValid
		invalid[f.Name] = f.Display == form.DisplayInvalid
		attention[f.Name] = false
	}

	signals := map[string]any{
		"values":        values,
		"errors":        errs,
		"valid":         valid,
		"invalid":       invalid,
		"attention":     attention,
		"submitEnabled": v.Submittable,
		"focus":         v.Focus,
		"error":         "",
	}
	if v.Strength != nil {
		signals["strength"] = strengthSignal{
			Score:    v.Strength.Score,
			Tier:     string(v.Strength.Tier),
			Fraction: v.Strength.Fraction,
			Label:    v.Strength.Label,
		}
	}

	data, _ := json.Marshal(signals)
	return string(data)
}

// pageComponent renders the whole sign-up document.
func pageComponent(v pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title>`, esc(v.Title))
		p.printf(`<script type="module" src="%s"></script></head><body>`, DatastarScript)
		if err := p.err; err != nil {
			return err
		}
		if err := formComponent(v).Render(ctx, w); err != nil {
			return err
		}
		p.printf(`</body></html>`)
		return p.err
	})
}

// formComponent renders the form element with live bindings.
func formComponent(v pageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<form id="form-%s" class="form" method="post" action="%s" novalidate data-signals="%s" data-on:submit__prevent="@post('%s')" data-effect="$focus && document.getElementById('field-' + $focus)?.focus()">`,
			esc(v.ID), esc(v.Action), esc(v.initialSignals()), esc(v.SubmitURL))
		p.printf(`<p class="form__error" data-show="$error" data-text="$error"></p>`)

		for _, f := range v.Fields {
			field(p, v, f)
		}

		p.printf(`<button type="submit" data-attr:disabled="!$submitEnabled">Sign up</button></form>`)
		return p.err
	})
}

func field(p *printer, v pageView, f fieldView) {
	name := esc(f.Name)
	classes := "form__field"
	switch f.Display {
	case form.DisplayValid:
		classes += " valid"
	case form.DisplayInvalid:
		classes += " invalid"
	}

	p.printf(`<div class="%s" data-class:valid="$valid.%s" data-class:invalid="$invalid.%s" data-class:shake="$attention.%s">`,
		classes, name, name, name)

	var required string
	if f.Required {
		required = " required"
	}

	if f.Kind.Checkbox() {
		var checked string
		if f.Checked {
			checked = " checked"
		}
		p.printf(`<label><input id="field-%s" type="checkbox" name="%s" value="true"%s%s data-bind="values.%s" data-on:change="@post('%s%s/change')"> %s</label>`,
			name, name, checked, required, name, esc(v.EventBase), name, esc(f.Label))
	} else {
		p.printf(`<label for="field-%s">%s</label>`, name, esc(f.Label))
		p.printf(`<input id="field-%s" type="%s" name="%s" value="%s"%s%s data-bind="values.%s" data-on:input__debounce.200ms="@post('%s%s/change')" data-on:blur="@post('%s%s/blur')">`,
			name, f.InputType, name, esc(f.Value), required, placeholder(f.Kind), name, esc(v.EventBase), name, esc(v.EventBase), name)
	}

	p.printf(`<div id="%s-error" class="client-error" data-show="$invalid.%s" data-text="$errors.%s">%s</div>`,
		name, name, name, esc(f.Message))

	if f.Kind == form.KindPassword && v.Strength != nil {
		p.printf(`<div class="password-strength"><div class="password-strength__bar strength-%s" style="width: %d%%" data-style:width="$strength.fraction * 100 + '%%'"></div><span class="password-strength__text" data-text="$strength.label">%s</span></div>`,
			esc(string(v.Strength.Tier)), int(v.Strength.Fraction*100), esc(v.Strength.Label))
	}

	p.printf(`</div>`)
}

func placeholder(k form.Kind) string {
	if k == form.KindBirthdate {
		return ` placeholder="YYYY-MM-DD" inputmode="numeric" maxlength="10"`
	}
	return ""
}

func esc(s string) string { return templ.EscapeString(s) }

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

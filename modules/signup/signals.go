package signup

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// inbound is the part of the client signal store the server reads.
type inbound struct {
	Values map[string]any `json:"values"`
}

// rawValue turns a bound input signal into the raw string the engine expects.
// Checkbox signals arrive as booleans.
func rawValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

type strengthSignal struct {
	Score    int     `json:"score"`
	Tier     string  `json:"tier"`
	Fraction float64 `json:"fraction"`
	Label    string  `json:"label"`
}

// diffSignals maps an engine diff onto the client signal store. Only fields
// in the diff are patched; rewritten values are echoed back into the inputs.
func diffSignals(d form.Diff) map[string]any {
	errs := make(map[string]any, len(d.Fields))
	valid := make(map[string]any, len(d.Fields))
	invalid := make(map[string]any, len(d.Fields))
	attention := make(map[string]any, len(d.Fields))
	values := make(map[string]any)

	for _, u := range d.Fields {
		errs[u.Name] = u.Message
		valid[u.Name] = u.Display == form.DisplayValid
		invalid[u.Name] = u.Display == form.DisplayInvalid
		attention[u.Name] = u.Attention
		if u.Rewritten {
			values[u.Name] = u.Value
		}
	}

	out := map[string]any{
		"errors":        errs,
		"valid":         valid,
		"invalid":       invalid,
		"attention":     attention,
		"submitEnabled": d.Submittable,
	}
	if len(values) > 0 {
		out["values"] = values
	}
	if d.Strength != nil {
		out["strength"] = strengthSignal{
			Score:    d.Strength.Score,
			Tier:     string(d.Strength.Tier),
			Fraction: d.Strength.Fraction,
			Label:    d.Strength.Label,
		}
	}
	if d.Focus != "" {
		out["focus"] = d.Focus
	}
	return out
}

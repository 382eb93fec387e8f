// Package form implements the form validation engine: it owns the state of
// one form instance, applies field events and derives whether the form may be
// submitted.
//
// A form is declared once, at attach time, as an ordered list of Descriptors
// (name, kind, required). The engine builds a field registry from it and from
// then on is the only writer of the FormState. Hosting code feeds it events
// through a single entry point and renders the returned Diff:
//
//	e, err := form.New("signup", []form.Descriptor{
//	    {Name: "login", Kind: form.KindUsername, Required: true},
//	    {Name: "email", Kind: form.KindEmail, Required: true},
//	    {Name: "password", Kind: form.KindPassword, Required: true},
//	    {Name: "confirm", Kind: form.KindConfirmPassword, Required: true},
//	    {Name: "agree", Kind: form.KindTerms, Required: true},
//	})
//	if err != nil {
//	    return err
//	}
//
//	diff, err := e.HandleFieldEvent("login", form.EventChange, "john_doe")
//	// diff.Fields[0].Value == "johndoe", Rewritten == true
//	// diff.Submittable == false
//
//	res := e.Submit()
//	if !res.Accepted {
//	    // res.Diff.Focus names the first failing field
//	}
//
// # Event processing
//
// For each event the engine sanitizes the value (pkg/sanitizer), evaluates the
// field's kind rule and the required rule (pkg/validator), re-evaluates the
// password/confirmation pair when either side changed, and recomputes the
// submit gate from scratch. Submittable is never cached.
//
// # Display policy
//
// A field's State is always the result of evaluating its current value. What
// the error slot shows (Display) may lag: "required" errors and username
// format errors appear only on blur or submit, all other errors appear while
// typing. Untouched fields show nothing.
//
// The engine is synchronous and not safe for concurrent use.
package form

// Package signup serves a form definition as a live-validated page.
//
// GET / attaches a new form engine, stores it under a random instance id and
// renders the page. The page binds every input to a datastar signal and posts
// each change and blur to /{id}/fields/{field}/{event}; the response patches
// error slots, validity classes, rewritten values, the password strength
// indicator and the submit button state. POST /{id}/submit runs the submit
// gate and either patches every failure with a focus target or redirects.
// POST /submit is the same flow for a plain HTML form post.
//
//	def, _ := signup.DefaultDefinition()
//	svc, err := signup.New(def, formstore.New(),
//		signup.WithBasePath("/signup"),
//		signup.WithSubmitter(accounts),
//	)
//	r.Mount("/signup", svc.Handle())
package signup

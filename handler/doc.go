// Package handler adapts Response values to net/http and carries the
// datastar helpers the live form adapter needs.
//
// A handler returns a Response; Wrap renders it and routes any error to the
// configured ErrorHandler:
//
//	r.Post("/{id}/submit", handler.Wrap(func(r *http.Request) handler.Response {
//		if !accepted {
//			return handler.Signals(map[string]any{"errors": errs})
//		}
//		return handler.Redirect("/welcome")
//	}, handler.WithLogger(log)))
//
// Responses render differently for datastar requests (server-sent events with
// signal or element patches) and plain requests (HTML and HTTP redirects).
package handler

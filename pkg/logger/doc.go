// Package logger builds *slog.Logger values with functional options, helper
// attribute constructors and injection of values stored in context.Context.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formkit"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.InfoContext(ctx, "form submitted", logger.Form("signup"), logger.Instance(id))
//
// Attribute helpers (Form, Field, Instance, Error, ...) keep key names
// consistent across packages. Helpers given a nil value return an empty
// slog.Attr, which slog drops.
package logger

// Package metrics exports Prometheus collectors for form validation
// outcomes, the form instance store and HTTP traffic.
//
//	reg := prometheus.NewRegistry()
//	m, err := metrics.New(reg, "formkit")
//	...
//	store := formstore.New(formstore.WithEvictCallback(m.OnEvict))
//	engine, err := form.New(name, fields, form.WithObserver(m))
//	router.Use(m.Middleware)
//	router.Handle("/metrics", metrics.Handler(reg))
package metrics

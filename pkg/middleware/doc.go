// Package middleware provides net/http middleware for collate servers.
//
// This package includes:
//   - OpenTelemetry request tracing
//   - Prometheus request and render metrics
//
// Both are plain func(http.Handler) http.Handler values and mount on a chi
// router with Use.
//
// # Tracing
//
// Tracing starts a server span per request and stores it on the request
// context. A render.Renderer given the same tracer nests its render span
// beneath it.
//
//	r.Use(middleware.Tracing(
//	    middleware.WithTracerName("my-app"),
//	))
//
// # Metrics
//
// NewMetrics registers the collectors once. Handler counts requests by
// chi route pattern; ObserveRender and RecordRenderError are called by
// handlers after each render pass.
//
//	reg := prometheus.NewRegistry()
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package middleware

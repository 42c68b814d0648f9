// Package middleware provides HTTP middleware for loom servers.
//
// The middleware here is standard net/http middleware, composable with
// chi or any other router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Prometheus())
//	r.Use(middleware.OpenTelemetry())
//
// Prometheus records request counts and durations per path. OpenTelemetry
// opens a server span per request; session event spans created during
// websocket handling nest under it.
package middleware

// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run blocks until the context is cancelled, SIGINT/SIGTERM arrives or the
// listener fails. Shutdown drains in-flight requests within the configured
// timeout. Probe builds liveness and readiness handlers.
package httpserver

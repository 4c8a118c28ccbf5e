// Package api serves the feedback board as a JSON API.
//
// Every response uses the handler.Envelope shape: {"data": ...} on success
// and {"error": {"code", "message", "details"}} on failure. Validation
// failures answer 422 with per-field messages in details.
//
// Authentication is a session token created on register or login. It is
// returned in the body and set as a cookie; clients may send it back either
// as the cookie or as "Authorization: Bearer <token>".
//
//	h := api.New(svc, sessions, api.WithLogger(log))
//	r := chi.NewRouter()
//	r.Mount("/api", h.Routes())
package api

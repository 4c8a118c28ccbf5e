// Package session keeps signed-in users' sessions.
//
// A Session is an explicit value: the token handed to the client plus the
// user it belongs to. Stores persist sessions (MemoryStore for a single
// process, RedisStore for shared deployments). Transports move the token
// between client and server: HeaderTransport reads "Authorization: Bearer
// <token>" for API clients and CookieTransport uses an HttpOnly cookie for
// browsers. CompositeTransport tries several in order.
//
// Manager ties the pieces together:
//
//	mgr := session.New(
//	    session.WithStore(session.NewRedisStore(rdb, cfg.TTL)),
//	    session.WithTransport(session.NewCompositeTransport(
//	        session.NewHeaderTransport(),
//	        session.NewCookieTransport(cfg.CookieName, cfg.SecureCookies),
//	    )),
//	)
//	r.Use(mgr.Middleware)
//
// Handlers read the current session with FromContext.
package session

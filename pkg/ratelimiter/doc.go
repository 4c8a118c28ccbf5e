// Package ratelimiter implements a token bucket limiter with an in-memory
// store and net/http middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that drives the
// bucket below zero is denied.
//
//	store := ratelimiter.NewMemoryStore()
//	go store.Run(ctx, 5*time.Minute)
//
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	mw := ratelimiter.Middleware(bucket, clientip.FromRequest)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on denials. Denied
// requests get a plain 429 unless WithDeniedHandler is given.
package ratelimiter

// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// FromRequest checks X-Forwarded-For (first valid entry), then X-Real-IP,
// then the TCP peer address. Middleware stores the result in the request
// context, where FromContext reads it back and LoggerExtractor adds it to
// log records as client_ip. The auth rate limiter keys on it.
package clientip

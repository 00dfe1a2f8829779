// Package clientip resolves the address of the client behind a request.
//
// Proxy headers are only consulted when the caller lists them, since any
// client can set them when the service is reachable directly. Behind a
// trusted proxy pass the header it sets:
//
//	r.Use(clientip.Middleware("X-Forwarded-For"))
//	ip := clientip.FromContext(r.Context())
package clientip

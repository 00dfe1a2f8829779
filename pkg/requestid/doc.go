// Package requestid assigns every HTTP request an identifier, echoes it in the
// X-Request-ID response header and stores it in the request context.
//
// A client-supplied id is kept when it is at most 128 characters of
// [A-Za-z0-9_-]; otherwise a random UUID is generated.
//
//	r.Use(requestid.Middleware)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid

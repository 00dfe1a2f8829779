// Package ratelimiter implements an in-memory token bucket limiter and an
// HTTP middleware on top of it.
//
// Each key owns a bucket of Capacity tokens. RefillRate tokens are added
// every RefillInterval, up to Capacity, and every allowed request takes one.
// Denied requests do not consume tokens.
//
//	bucket, err := ratelimiter.NewBucket(cfg)
//	defer bucket.Close()
//	r.Use(ratelimiter.Middleware(bucket, ratelimiter.ByClientIP, denied))
package ratelimiter

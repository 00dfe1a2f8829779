package ratelimiter

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid rate limiter configuration")
	ErrEmptyKey      = errors.New("rate limit key is empty")
)

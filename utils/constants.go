package utils

import (
	"time"
)

// contextKey is the private type for request-scoped context values.
type contextKey string

// Request-scoped context keys set by handlers for observability.
const (
	RequestIDKey contextKey = "request_id"
	UserAgentKey contextKey = "user_agent"
	IPAddressKey contextKey = "ip_address"
	EndpointKey  contextKey = "endpoint"
	TimeoutKey   contextKey = "timeout"

	// CancelFuncKey carries the context cancel function so late cleanup can
	// release the timer.
	CancelFuncKey contextKey = "cancel_func"
)

// Token time constants
const (
	// AccessTokenTTL is the default time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// RequestTimeout is the per-request deadline applied to every flow call.
const RequestTimeout = 30 * time.Second

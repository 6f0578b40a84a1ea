package utils

import (
	"time"
)

// Token time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Locale constants for bilingual content
const (
	LocalePersian = "fa"
	LocaleEnglish = "en"
)

// ToggleLocale flips between the two supported locales. Any unknown value
// falls back to Persian, the site default.
func ToggleLocale(current string) string {
	if current == LocalePersian {
		return LocaleEnglish
	}
	return LocalePersian
}

// IsSupportedLocale reports whether the given locale is one of the two site locales
func IsSupportedLocale(locale string) bool {
	return locale == LocalePersian || locale == LocaleEnglish
}

// ContextKey is the type for request-scoped context values
type ContextKey string

// Context keys threaded from handlers into flows
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	LocaleKey     ContextKey = "locale"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// File: utils/constants.go
package utils

// SessionCookieName is the cookie carrying the session bearer token.
const SessionCookieName = "session_token"

// ExternalSessionHeader carries the delegated-auth session handle.
const ExternalSessionHeader = "X-Session-ID"

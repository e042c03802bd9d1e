package ports

// TokenStore exposes the locally stored credentials attached to outgoing
// requests. The store is read-only from this core's perspective: refresh and
// expiry are the account subsystem's responsibility.
//
// Both methods return the empty string when no credential is stored. A
// missing access token results in an unauthenticated request rather than a
// client-side failure; the backend is the source of truth for authorization.
type TokenStore interface {
	AccessToken() string
	RefreshToken() string
}

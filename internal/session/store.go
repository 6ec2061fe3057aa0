package session

// Store is a durable string-keyed store surviving process restarts. Absent
// keys are reported via the bool, not an error.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Keys the session layer persists. Token values are raw strings; everything
// else is JSON-encoded.
const (
	KeyAccessToken     = "access_token"
	KeyRefreshToken    = "refresh_token"
	KeyDemoUser        = "demo_user_data"
	KeyDemoCredentials = "demo_login_credentials"
	KeyUserBookings    = "userBookings"
)

// sessionKeys is the full set removed by ClearSession.
var sessionKeys = []string{
	KeyAccessToken,
	KeyRefreshToken,
	KeyDemoUser,
	KeyDemoCredentials,
	KeyUserBookings,
}

package models

// User is the session identity. Provenance is either the upstream profile
// endpoint or a synthetic demo identity created at fallback-login time.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	UserType    string `json:"user_type,omitempty"`
	Role        string `json:"role,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// UserUpdate carries partial profile edits; nil fields are left untouched.
type UserUpdate struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

// TokenPair is the upstream auth response; demo logins fabricate one.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// DemoCredentials is the diagnostic echo persisted after a fallback login.
// The password is stored as a bcrypt hash, never in the clear.
type DemoCredentials struct {
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"password_hash"`
}

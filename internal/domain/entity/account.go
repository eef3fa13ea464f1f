package entity

// Account is a registered user record held by the stub API server. The
// PasswordHash is a bcrypt digest, never the plaintext password.
type Account struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
}

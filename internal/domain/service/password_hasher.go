package service

// PasswordHasher defines the interface for hashing and comparing passwords.
// This abstracts the hashing algorithm from the use cases.
type PasswordHasher interface {
	// Hash generates a hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare checks if a plaintext password matches a stored hash.
	Compare(hashedPassword, password string) error
}

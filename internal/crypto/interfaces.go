package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks one-way, salted password digests.
//
// Hashing is deliberately slow; callers must treat both methods as
// blocking operations.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. Two calls with the same
	// plaintext return different digests, both of which verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the digest.
	// Returns (true, nil) on match, (false, nil) on mismatch and
	// (false, ErrInvalidHashFormat) when the digest cannot be parsed.
	Verify(plaintext, hash string) (bool, error)
}

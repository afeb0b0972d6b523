// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher defines the interface for one-way salted hashing of
// credential material. It is used for passwords (security) and, unusually,
// for email addresses (privacy at rest: emails are never stored or logged in
// plaintext).
//
// Digests must be self-describing: the salt has to be recoverable from the
// digest itself so that Check needs no separately stored salt.
type CredentialHasher interface {
	// Hash generates a freshly salted digest from a plaintext value.
	Hash(plaintext string) (string, error)

	// Check compares a plaintext value with a digest. The comparison must be
	// constant-time with respect to early mismatch.
	Check(plaintext, digest string) bool
}

package service

// CredentialSealer encrypts provider credentials before they are stored.
// This abstracts the underlying cipher, keeping the domain pure.
type CredentialSealer interface {
	// Seal encrypts a plaintext credential.
	Seal(plaintext string) (string, error)

	// Open decrypts a sealed credential. Values that were never sealed are returned unchanged.
	Open(sealed string) (string, error)
}

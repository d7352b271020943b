package gateways

import (
	"context"
	"fmt"

	"github.com/ochairo/binprobe/internal/external-adapters/gpg"
)

// integrityVerifier combines the checksum verifier with the OpenPGP adapter
type integrityVerifier struct {
	checksums *checksumVerifier
}

// NewIntegrityVerifier creates a verifier for checksum and signature gates
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewIntegrityVerifier() *integrityVerifier {
	return &integrityVerifier{checksums: NewChecksumVerifier()}
}

// VerifyChecksum checks the file's SHA-256 digest
func (v *integrityVerifier) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	return v.checksums.VerifyChecksum(ctx, filePath, expectedSum)
}

// VerifySignature checks a detached signature against a local keyring.
// Each call loads a fresh keyring so runs never share trusted keys.
func (v *integrityVerifier) VerifySignature(_ context.Context, filePath, keyringPath, sigPath string) error {
	verifier := gpg.NewVerifier()

	if err := verifier.ImportKeyFromFile(keyringPath); err != nil {
		return fmt.Errorf("failed to import OpenPGP keyring: %w", err)
	}

	if err := verifier.VerifySignatureFromFile(filePath, sigPath); err != nil {
		return fmt.Errorf("OpenPGP signature verification failed: %w", err)
	}

	return nil
}

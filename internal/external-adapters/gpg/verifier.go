// Package gpg provides OpenPGP detached signature verification for
// packaged binaries.
package gpg

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// armoredHeader opens every ASCII-armored OpenPGP block
var armoredHeader = []byte("-----BEGIN PGP ")

// Verifier checks detached signatures against a local keyring using
// ProtonMail's go-crypto, a maintained fork of golang.org/x/crypto/openpgp
type Verifier struct {
	keyring openpgp.EntityList
}

// NewVerifier creates a verifier with an empty keyring
func NewVerifier() *Verifier {
	return &Verifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFromFile adds the keys in an armored or binary keyring file
func (v *Verifier) ImportKeyFromFile(keyPath string) error {
	//nolint:gosec // G304: keyPath comes from pipeline configuration
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("failed to open key file: %w", err)
	}

	var entities openpgp.EntityList
	if isArmored(data) {
		entities, err = openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	} else {
		entities, err = openpgp.ReadKeyRing(bytes.NewReader(data))
	}
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}

	if len(entities) == 0 {
		return fmt.Errorf("no keys found in file")
	}

	v.keyring = append(v.keyring, entities...)
	return nil
}

// VerifySignatureFromFile verifies filePath against the detached
// signature in sigPath, armored or binary
func (v *Verifier) VerifySignatureFromFile(filePath, sigPath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no OpenPGP keys imported, call ImportKeyFromFile first")
	}

	//nolint:gosec // G304: sigPath comes from pipeline configuration
	sigData, err := os.ReadFile(sigPath)
	if err != nil {
		return fmt.Errorf("failed to open signature file: %w", err)
	}

	//nolint:gosec // G304: filePath is the packaged binary under inspection
	dataFile, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open data file: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer dataFile.Close()

	if err := v.check(dataFile, sigData); err != nil {
		return fmt.Errorf("signature verification failed: %w", err)
	}

	return nil
}

func (v *Verifier) check(signed io.Reader, sigData []byte) error {
	if isArmored(sigData) {
		_, err := openpgp.CheckArmoredDetachedSignature(v.keyring, signed, bytes.NewReader(sigData), nil)
		return err
	}
	_, err := openpgp.CheckDetachedSignature(v.keyring, signed, bytes.NewReader(sigData), nil)
	return err
}

func isArmored(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), armoredHeader)
}

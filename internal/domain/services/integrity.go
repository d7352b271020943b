// Package services implements domain business logic and use cases.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ochairo/binprobe/internal/domain/entities"
	"github.com/ochairo/binprobe/internal/domain/interfaces/gateways"
)

// IntegrityService decides which integrity gates apply to an artifact
type IntegrityService struct {
	verifier gateways.IntegrityVerifier
	config   entities.VerifyConfig
}

// NewIntegrityService creates a new integrity service with dependency injection
func NewIntegrityService(verifier gateways.IntegrityVerifier, config entities.VerifyConfig) *IntegrityService {
	return &IntegrityService{verifier: verifier, config: config}
}

// CheckArtifact runs the configured gates against the artifact.
// It reports whether a signature was verified; gates that are not
// configured are skipped.
func (s *IntegrityService) CheckArtifact(ctx context.Context, artifact *entities.Artifact) (bool, error) {
	if expected := strings.ToLower(strings.TrimSpace(s.config.SHA256)); expected != "" {
		if err := s.verifier.VerifyChecksum(ctx, artifact.Path, expected); err != nil {
			return false, fmt.Errorf("checksum gate failed: %w", err)
		}
	}

	if !s.config.SignatureCheckEnabled() {
		return false, nil
	}

	if err := s.verifier.VerifySignature(ctx, artifact.Path, s.config.Keyring, s.config.Signature); err != nil {
		return false, fmt.Errorf("signature gate failed: %w", err)
	}

	return true, nil
}

package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"

	authService "github.com/allisson/notes/internal/auth/service"
)

// generatedSecretSize is the length in bytes of secrets created with --generate.
const generatedSecretSize = 32

// RunSealSecret encrypts a token signing secret with the KMS key at kmsKeyURI and
// prints the environment variables the server needs to decrypt it at startup.
// With generate set a random secret is created; otherwise secret is used, or read
// from io.Reader when empty.
//
// Security: Never use the base64key:// provider in production.
func RunSealSecret(
	ctx context.Context,
	logger *slog.Logger,
	kmsKeyURI string,
	secret string,
	generate bool,
	io IOTuple,
) error {
	if kmsKeyURI == "" {
		return fmt.Errorf("--kms-key-uri is required")
	}

	if generate {
		raw := make([]byte, generatedSecretSize)
		if _, err := rand.Read(raw); err != nil {
			return fmt.Errorf("failed to generate secret: %w", err)
		}
		secret = base64.StdEncoding.EncodeToString(raw)
	} else if secret == "" {
		var err error
		secret, err = promptLine(io, "Enter secret: ")
		if err != nil {
			return fmt.Errorf("failed to get secret: %w", err)
		}
	}

	if secret == "" {
		return fmt.Errorf("secret cannot be empty")
	}

	sealed, err := authService.SealSigningSecret(ctx, []byte(secret), kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to seal secret: %w", err)
	}

	_, _ = fmt.Fprintln(io.Writer, "# Signing secret sealed with KMS")
	_, _ = fmt.Fprintf(io.Writer, "SECRET_KEY=\"%s\"\n", sealed)
	_, _ = fmt.Fprintf(io.Writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)

	logger.Info("signing secret sealed", slog.Bool("generated", generate))
	return nil
}

package service

import (
	"context"
	"encoding/base64"
	"strings"

	"gocloud.dev/secrets"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	apperrors "github.com/allisson/notes/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ResolveSigningSecret returns the token signing secret. Without a KMS key URI the
// configured value is the secret itself. With one, the value is base64 ciphertext
// produced by SealSigningSecret and is decrypted through the KMS keeper.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func ResolveSigningSecret(ctx context.Context, secretKey, kmsKeyURI string) ([]byte, error) {
	if secretKey == "" {
		return nil, authDomain.ErrEmptySecret
	}
	if kmsKeyURI == "" {
		return []byte(secretKey), nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(strings.TrimSpace(secretKey))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "sealed signing secret is not valid base64")
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer func() {
		_ = keeper.Close()
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to decrypt signing secret")
	}
	if len(plaintext) == 0 {
		return nil, authDomain.ErrEmptySecret
	}
	return plaintext, nil
}

// SealSigningSecret encrypts a signing secret with the KMS key and returns it
// base64 encoded, ready to be used as SECRET_KEY together with KMS_KEY_URI.
func SealSigningSecret(ctx context.Context, plaintext []byte, kmsKeyURI string) (string, error) {
	if len(plaintext) == 0 {
		return "", authDomain.ErrEmptySecret
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encrypt signing secret")
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

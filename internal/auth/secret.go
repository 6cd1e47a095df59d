package auth

import (
	"crypto/subtle"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// SecretVerifier checks the shared admin credential presented by callers of
// authorization-gated operations (retire, clearance approval).
type SecretVerifier interface {
	Verify(secret string) bool
}

type adminSecretVerifier struct {
	configured string
	hashed     bool
	logger     *slog.Logger
}

// NewSecretVerifier builds a verifier around the configured credential.
// Values starting with $2 are treated as bcrypt hashes; anything else is
// compared in constant time as plaintext.
func NewSecretVerifier(configured string, logger *slog.Logger) SecretVerifier {
	return &adminSecretVerifier{
		configured: configured,
		hashed:     strings.HasPrefix(configured, "$2"),
		logger:     logger,
	}
}

func (v *adminSecretVerifier) Verify(secret string) bool {
	if secret == "" || v.configured == "" {
		return false
	}

	if v.hashed {
		err := bcrypt.CompareHashAndPassword([]byte(v.configured), []byte(secret))
		if err != nil {
			v.logger.Warn("admin secret mismatch")
			return false
		}
		return true
	}

	if subtle.ConstantTimeCompare([]byte(v.configured), []byte(secret)) != 1 {
		v.logger.Warn("admin secret mismatch")
		return false
	}
	return true
}

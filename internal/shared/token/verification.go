package token

import (
	"strings"

	"github.com/google/uuid"
)

// Generator produces opaque verification tokens for members.
type Generator func() (string, error)

// NewVerificationToken returns 32 hex characters (122 random bits from a v4 UUID).
// It is the public handle encoded in a member's QR code.
func NewVerificationToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}

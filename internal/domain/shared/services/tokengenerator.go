package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/brt06a/Testv5/internal/shared/biztime"
)

// OrderIDGenerator produces merchant order identifiers.
type OrderIDGenerator interface {
	Generate() (string, error)
}

// DefaultOrderIDGenerator yields "order_<unix millis>_<8 hex chars>".
type DefaultOrderIDGenerator struct {
	now func() time.Time
}

func NewOrderIDGenerator() *DefaultOrderIDGenerator {
	return &DefaultOrderIDGenerator{now: biztime.NowUTC}
}

func (g *DefaultOrderIDGenerator) Generate() (string, error) {
	suffix, err := randomHex(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("order_%d_%s", g.now().UnixMilli(), suffix), nil
}

// SessionTokenGenerator produces opaque admin session tokens.
type SessionTokenGenerator interface {
	Generate() (string, error)
}

// DefaultSessionTokenGenerator yields 256 random bits as 64 hex characters.
type DefaultSessionTokenGenerator struct{}

func NewSessionTokenGenerator() *DefaultSessionTokenGenerator {
	return &DefaultSessionTokenGenerator{}
}

func (g *DefaultSessionTokenGenerator) Generate() (string, error) {
	return randomHex(32)
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"group-ledger/internal/models"
)

const (
	InviteKeyLength          = 8
	DefaultInviteKeyAttempts = 20

	inviteKeyAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// largest multiple of 36 that fits in a byte; higher bytes are rejected
	inviteKeyByteLimit = 252
)

var ErrKeyGenerationExhausted = errors.New("invite key generation exhausted its attempts")

// InviteKeyGenerator draws uniform base-36 keys and retries on collision.
type InviteKeyGenerator struct {
	maxAttempts int
	random      io.Reader
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
}

func NewInviteKeyGenerator(maxAttempts int, auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) InviteKeyGeneratorInterface {
	return newInviteKeyGenerator(maxAttempts, rand.Reader, auditLogger, metrics)
}

func newInviteKeyGenerator(maxAttempts int, random io.Reader, auditLogger AuditLoggerInterface, metrics MetricsRecorderInterface) *InviteKeyGenerator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultInviteKeyAttempts
	}
	return &InviteKeyGenerator{
		maxAttempts: maxAttempts,
		random:      random,
		auditLogger: auditLogger,
		metrics:     metrics,
	}
}

func (g *InviteKeyGenerator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate returns a key for which exists reported false. It gives up with
// ErrKeyGenerationExhausted after MaxAttempts collisions.
func (g *InviteKeyGenerator) Generate(exists models.InviteKeyLookup) (string, error) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		key, err := g.randomKey()
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}

		taken, err := exists(key)
		if err != nil {
			return "", fmt.Errorf("failed to check invite key: %w", err)
		}
		if !taken {
			return key, nil
		}

		g.auditLogger.LogInviteKeyCollision(context.Background(), attempt, g.maxAttempts)
		g.metrics.IncrementCounter(MetricInviteKeyCollision, nil)
	}

	g.metrics.IncrementCounter(MetricInviteKeyExhausted, nil)
	return "", ErrKeyGenerationExhausted
}

func (g *InviteKeyGenerator) randomKey() (string, error) {
	key := make([]byte, 0, InviteKeyLength)
	buf := make([]byte, InviteKeyLength*2)
	for len(key) < InviteKeyLength {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= inviteKeyByteLimit {
				continue
			}
			key = append(key, inviteKeyAlphabet[int(b)%len(inviteKeyAlphabet)])
			if len(key) == InviteKeyLength {
				break
			}
		}
	}
	return string(key), nil
}

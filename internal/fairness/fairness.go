// Package fairness implements the commit-reveal protocol that keeps the
// computer from choosing its move after seeing the user's.
//
// A Commitment fixes the computer's move at creation time and publishes
// HMAC-SHA256(key, move) as a hex digest. The key stays secret until the user
// has moved; once revealed, anyone can recompute the digest with Verify.
package fairness

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	mathrand "math/rand/v2"

	"github.com/lox/rpsfair/internal/moveset"
	"github.com/lox/rpsfair/internal/randutil"
)

// KeySize is the length of the secret key in bytes.
const KeySize = 32

// DigestLen is the length of a hex-encoded digest.
const DigestLen = sha256.Size * 2

// ErrMalformedHex is returned by Verify when the key or digest is not valid hex
// of the expected length.
var ErrMalformedHex = errors.New("malformed hex value")

// Commitment binds the computer to a move without disclosing it.
type Commitment struct {
	key    [KeySize]byte
	move   int
	name   string
	digest string
}

type options struct {
	entropy io.Reader
	rng     *mathrand.Rand
}

// Option configures NewCommitment.
type Option func(*options)

// WithEntropy replaces crypto/rand as the key source. Only tests should use it.
func WithEntropy(r io.Reader) Option {
	return func(o *options) {
		o.entropy = r
	}
}

// WithRNG sets the random source used to pick the move. Without it a
// clock-seeded source from randutil is used.
func WithRNG(rng *mathrand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// NewCommitment draws a fresh key, picks a move uniformly from ms and
// computes the digest.
func NewCommitment(ms moveset.MoveSet, opts ...Option) (*Commitment, error) {
	o := options{entropy: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng, _ = randutil.NewFromTime()
	}

	c := &Commitment{}
	if _, err := io.ReadFull(o.entropy, c.key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	c.move = o.rng.IntN(ms.Len())
	c.name = ms.Name(c.move)
	c.digest = ComputeDigest(c.key[:], c.name)
	return c, nil
}

// Digest returns the public commitment as lowercase hex.
func (c *Commitment) Digest() string {
	return c.digest
}

// Move returns the committed move index.
func (c *Commitment) Move() int {
	return c.move
}

// MoveName returns the committed move name.
func (c *Commitment) MoveName() string {
	return c.name
}

// Reveal returns the secret key as lowercase hex. Call it only after the user
// has chosen a move.
func (c *Commitment) Reveal() string {
	return hex.EncodeToString(c.key[:])
}

// ComputeDigest returns hex(HMAC-SHA256(key, move)).
func ComputeDigest(key []byte, move string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether digestHex is the HMAC of move under keyHex.
func Verify(keyHex, move, digestHex string) (bool, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return false, fmt.Errorf("%w: key: %v", ErrMalformedHex, err)
	}
	if len(key) != KeySize {
		return false, fmt.Errorf("%w: key must be %d bytes, got %d", ErrMalformedHex, KeySize, len(key))
	}
	want, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, fmt.Errorf("%w: digest: %v", ErrMalformedHex, err)
	}
	if len(want) != sha256.Size {
		return false, fmt.Errorf("%w: digest must be %d bytes, got %d", ErrMalformedHex, sha256.Size, len(want))
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return subtle.ConstantTimeCompare(mac.Sum(nil), want) == 1, nil
}

package security

import (
	"checkout_verifier/internal/domain/entities"
	"checkout_verifier/internal/usecase/interfaces"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

var ErrMissingTokenSecret = errors.New("missing token signing secret")

const (
	tokenSeparator  = "."
	tokenNonceBytes = 12
)

// HMACTokenCodec issues confirmation access tokens of the form
//
//	base64url(json(claims)) + "." + hex(HMAC-SHA256(secret, base64url(json(claims))))
//
// Tokens are stateless: nothing is stored server side and there is no
// revocation. A leaked token stays usable until it expires.
type HMACTokenCodec struct {
	secret []byte
	now    func() time.Time
	random io.Reader
}

var _ interfaces.ITokenCodec = (*HMACTokenCodec)(nil)

type TokenCodecOption func(*HMACTokenCodec)

// WithClock overrides the time source, mainly for tests.
func WithClock(now func() time.Time) TokenCodecOption {
	return func(c *HMACTokenCodec) {
		c.now = now
	}
}

// WithRandom overrides the nonce source.
func WithRandom(r io.Reader) TokenCodecOption {
	return func(c *HMACTokenCodec) {
		c.random = r
	}
}

func NewHMACTokenCodec(secret string, opts ...TokenCodecOption) (*HMACTokenCodec, error) {
	if secret == "" {
		return nil, ErrMissingTokenSecret
	}
	c := &HMACTokenCodec{
		secret: []byte(secret),
		now:    time.Now,
		random: rand.Reader,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *HMACTokenCodec) Issue(transactionID string, amount float64) (string, error) {
	nonce := make([]byte, tokenNonceBytes)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("token nonce: %w", err)
	}

	claims := entities.AccessTokenClaims{
		TransactionID: transactionID,
		Amount:        amount,
		ExpiresAt:     c.now().Add(entities.AccessTokenLifetime).UnixMilli(),
		Nonce:         base64.RawURLEncoding.EncodeToString(nonce),
	}
	b, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("token claims: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + tokenSeparator + c.sign(payload), nil
}

// Validate never says why a token was rejected: malformed input, a bad MAC and
// expiry all produce the same zero TokenValidation.
func (c *HMACTokenCodec) Validate(token string) entities.TokenValidation {
	payload, sig, ok := strings.Cut(strings.TrimSpace(token), tokenSeparator)
	if !ok || payload == "" || sig == "" {
		return entities.TokenValidation{}
	}

	expected := c.sign(payload)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return entities.TokenValidation{}
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return entities.TokenValidation{}
	}
	var claims entities.AccessTokenClaims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return entities.TokenValidation{}
	}
	if claims.TransactionID == "" || claims.ExpiresAt == 0 {
		return entities.TokenValidation{}
	}
	if c.now().UnixMilli() > claims.ExpiresAt {
		return entities.TokenValidation{}
	}

	return entities.TokenValidation{
		Valid:         true,
		TransactionID: claims.TransactionID,
		Amount:        claims.Amount,
	}
}

func (c *HMACTokenCodec) sign(payload string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

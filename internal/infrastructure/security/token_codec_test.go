package security

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

type failingReader struct{}

func (failingReader) Read(_ []byte) (int, error) { return 0, errors.New("no entropy") }

func newTestCodec(t *testing.T, clock *fixedClock) *HMACTokenCodec {
	t.Helper()
	codec, err := NewHMACTokenCodec("test-secret", WithClock(clock.Now))
	require.NoError(t, err)
	return codec
}

func TestNewHMACTokenCodec_RequiresSecret(t *testing.T) {
	_, err := NewHMACTokenCodec("")
	assert.ErrorIs(t, err, ErrMissingTokenSecret)
}

func TestHMACTokenCodec_RoundTrip(t *testing.T) {
	clock := &fixedClock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	cases := []struct {
		tid    string
		amount float64
	}{
		{tid: "LOCAL_123", amount: 19.90},
		{tid: "TX9", amount: 47.90},
		{tid: "123456789", amount: 0},
		{tid: "tx with spaces/and.dots", amount: 1234.56},
	}
	for _, tc := range cases {
		token, err := codec.Issue(tc.tid, tc.amount)
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(token, "."))

		res := codec.Validate(token)
		assert.True(t, res.Valid)
		assert.Equal(t, tc.tid, res.TransactionID)
		assert.Equal(t, tc.amount, res.Amount)
	}
}

func TestHMACTokenCodec_Expiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{t: issuedAt}
	codec := newTestCodec(t, clock)

	token, err := codec.Issue("TX1", 10)
	require.NoError(t, err)

	clock.t = issuedAt.Add(time.Hour)
	assert.True(t, codec.Validate(token).Valid, "token must still be valid at exactly 1h")

	clock.t = issuedAt.Add(time.Hour + time.Second)
	res := codec.Validate(token)
	assert.False(t, res.Valid)
	assert.Empty(t, res.TransactionID)
	assert.Zero(t, res.Amount)
}

func TestHMACTokenCodec_TamperEvidence(t *testing.T) {
	clock := &fixedClock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	token, err := codec.Issue("TX1", 99.99)
	require.NoError(t, err)

	for i := 0; i < len(token); i++ {
		replacement := byte('A')
		if token[i] == 'A' {
			replacement = 'B'
		}
		tampered := token[:i] + string(replacement) + token[i+1:]
		res := codec.Validate(tampered)
		if res.Valid {
			t.Fatalf("tampered token at index %d was accepted", i)
		}
	}
}

func TestHMACTokenCodec_RejectsForeignAndMalformed(t *testing.T) {
	clock := &fixedClock{t: time.Now()}
	codec := newTestCodec(t, clock)
	other, err := NewHMACTokenCodec("other-secret", WithClock(clock.Now))
	require.NoError(t, err)

	foreign, err := other.Issue("TX1", 10)
	require.NoError(t, err)

	for _, token := range []string{"", ".", "abc", "abc.", ".abc", "not-base64!.deadbeef", foreign} {
		res := codec.Validate(token)
		assert.False(t, res.Valid, "token %q", token)
		assert.Empty(t, res.TransactionID)
	}
}

func TestHMACTokenCodec_NonceMakesTokensDistinct(t *testing.T) {
	clock := &fixedClock{t: time.Now()}
	codec := newTestCodec(t, clock)

	a, err := codec.Issue("TX1", 10)
	require.NoError(t, err)
	b, err := codec.Issue("TX1", 10)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestHMACTokenCodec_NonceSourceFailure(t *testing.T) {
	codec, err := NewHMACTokenCodec("secret", WithRandom(failingReader{}))
	require.NoError(t, err)

	_, err = codec.Issue("TX1", 10)
	assert.Error(t, err)
}

func TestHMACTokenCodec_DeterministicWithFixedNonce(t *testing.T) {
	clock := &fixedClock{t: time.Unix(1700000000, 0)}
	nonce := bytes.Repeat([]byte{0x01}, tokenNonceBytes*2)
	a, err := NewHMACTokenCodec("secret", WithClock(clock.Now), WithRandom(bytes.NewReader(nonce)))
	require.NoError(t, err)

	t1, err := a.Issue("TX1", 10)
	require.NoError(t, err)
	t2, err := a.Issue("TX1", 10)
	require.NoError(t, err)
	assert.Equal(t, t1, t2)
}

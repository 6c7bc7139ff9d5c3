package security

import (
	"checkout_verifier/internal/usecase/interfaces"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signaturePrefixes are schemes some gateways put in front of the hex digest.
var signaturePrefixes = []string{"sha256=", "sha256:", "hmac-sha256="}

// WebhookSignatureVerifier checks HMAC-SHA256 signatures over raw webhook
// bodies using a shared secret.
type WebhookSignatureVerifier struct {
	secret []byte
}

var _ interfaces.IWebhookSignatureVerifier = (*WebhookSignatureVerifier)(nil)

func NewWebhookSignatureVerifier(secret string) *WebhookSignatureVerifier {
	return &WebhookSignatureVerifier{secret: []byte(secret)}
}

// Configured is false when no shared secret was provided. Callers decide what
// an unconfigured verifier means; Verify itself always fails in that case.
func (v *WebhookSignatureVerifier) Configured() bool {
	return v != nil && len(v.secret) > 0
}

// Sign returns the lowercase hex HMAC of body.
func (v *WebhookSignatureVerifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (v *WebhookSignatureVerifier) Verify(body []byte, signature string) bool {
	if !v.Configured() {
		return false
	}
	provided, err := hex.DecodeString(StripSignaturePrefix(signature))
	if err != nil || len(provided) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hmac.Equal(provided, mac.Sum(nil))
}

// StripSignaturePrefix removes a known scheme prefix, case-insensitively.
func StripSignaturePrefix(signature string) string {
	s := strings.TrimSpace(signature)
	lower := strings.ToLower(s)
	for _, p := range signaturePrefixes {
		if strings.HasPrefix(lower, p) {
			return strings.TrimSpace(s[len(p):])
		}
	}
	return s
}

package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Verifier checks payment callback signatures: a hex HMAC-SHA256 of
// "<gatewayOrderID>|<paymentID>" under the shared key secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Sign(gatewayOrderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time.
func (v *Verifier) Verify(gatewayOrderID, paymentID, signature string) bool {
	expected := v.Sign(gatewayOrderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

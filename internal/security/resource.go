package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"
)

// SignResumeURL produces an expiring HMAC signature over a resume object key.
// The signature covers the key and the unix expiry so neither can be swapped.
func SignResumeURL(secret string, objectKey string, expiresAt time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%s:%d", objectKey, expiresAt.Unix())
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// VerifyResumeURL checks signature validity and expiry for a signed resume
// link. expires is the unix timestamp carried in the URL.
func VerifyResumeURL(secret string, objectKey string, expires string, signature string) bool {
	unix, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return false
	}
	expiresAt := time.Unix(unix, 0)
	if !time.Now().Before(expiresAt) {
		return false
	}
	expected := SignResumeURL(secret, objectKey, expiresAt)
	return hmac.Equal([]byte(signature), []byte(expected))
}

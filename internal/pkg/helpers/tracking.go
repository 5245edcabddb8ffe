package helpers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const TrackingPrefix = "TKT"

// GenerateTrackingID builds the user-facing reference attached to a paid
// booking, e.g. TKT-20261015-9F3A1C. It is not an idempotency key.
func GenerateTrackingID(now time.Time) (string, error) {
	suffix, err := GenerateCode(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", TrackingPrefix, now.Format("20060102"), suffix), nil
}

// GenerateCode returns n random bytes as upper-case hex.
func GenerateCode(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(b)), nil
}

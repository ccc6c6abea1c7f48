package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// NewTrackingID returns a code like PRCL-20250831-A1B2C3: the current UTC
// date plus three random bytes. Uniqueness is probabilistic only; the
// payments table's unique transaction id is the real duplicate guard.
func NewTrackingID() string {
	date := time.Now().UTC().Format("20060102")

	buf := make([]byte, 3)
	rand.Read(buf)

	return fmt.Sprintf("PRCL-%s-%s", date, strings.ToUpper(hex.EncodeToString(buf)))
}

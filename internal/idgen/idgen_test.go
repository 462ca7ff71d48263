package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFormats(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^M[0-9a-f]{31}$`), MerchantID())
	assert.Regexp(t, regexp.MustCompile(`^\d{14}[0-9a-f]{18}$`), OrderID())
	assert.Regexp(t, regexp.MustCompile(`^T[0-9a-f]{32}$`), TransactionID())
	assert.Regexp(t, regexp.MustCompile(`^A[0-9a-f]{32}$`), AccountID())
}

func TestIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := OrderID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNonceStr(t *testing.T) {
	s := NonceStr(32)
	assert.Len(t, s, 32)
	assert.Regexp(t, regexp.MustCompile(`^[A-Za-z0-9]{32}$`), s)
	assert.NotEqual(t, s, NonceStr(32))
}

func TestSnowflakeNext(t *testing.T) {
	a, b := Next(), Next()
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuthAttempt(t *testing.T) {
	before := testutil.ToFloat64(authAttempts.WithLabelValues("login", "rejected"))
	AuthAttempt("login", "rejected")
	AuthAttempt("login", "rejected")
	assert.Equal(t, before+2, testutil.ToFloat64(authAttempts.WithLabelValues("login", "rejected")))
}

func TestTokenRejected(t *testing.T) {
	before := testutil.ToFloat64(tokenRejections.WithLabelValues("expired"))
	TokenRejected("expired")
	assert.Equal(t, before+1, testutil.ToFloat64(tokenRejections.WithLabelValues("expired")))
}

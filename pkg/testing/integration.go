package testing

import (
	"os"
	"testing"
)

// IntegrationEnv enables tests that start containers.
const IntegrationEnv = "RANK_EVAL_IT"

// RequireIntegration skips the test unless RANK_EVAL_IT=1.
func RequireIntegration(tb testing.TB) {
	tb.Helper()
	if os.Getenv(IntegrationEnv) != "1" {
		tb.Skipf("set %s=1 to run container tests", IntegrationEnv)
	}
}

//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders compares response headers by name. An empty value asserts the header was not sent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, want map[string]string) {
	t.Helper()
	for name, value := range want {
		if value == "" {
			assert.Empty(t, w.Header().Values(name), "header %s should not be set", name)
			continue
		}
		assert.Equal(t, value, w.Header().Get(name), "header %s", name)
	}
}

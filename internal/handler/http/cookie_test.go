package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-keeper/internal/service"
)

func TestSameSiteFromConfig(t *testing.T) {
	tests := []struct {
		mode string
		want http.SameSite
	}{
		{"lax", http.SameSiteLaxMode},
		{"strict", http.SameSiteStrictMode},
		{"none", http.SameSiteNoneMode},
		{"", http.SameSiteDefaultMode},
		{"garbage", http.SameSiteDefaultMode},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("mode="+tt.mode, func(t *testing.T) {
			assert.Equal(t, tt.want, sameSiteFromConfig(tt.mode))
		})
	}
}

// TestAttachTokenCookie verifies that the session cookie carries the signed
// token with the configured attributes and the fixed "/" path.
func TestAttachTokenCookie(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	rec := httptest.NewRecorder()

	h.attachTokenCookie(rec, "signed.jwt.token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "token", cookie.Name)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, "localhost", cookie.Domain)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

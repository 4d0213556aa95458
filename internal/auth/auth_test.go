package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kthsports/storefront/internal/config"
	"github.com/kthsports/storefront/internal/state"
)

func newAuthenticator(t *testing.T, admin config.AdminConfig) (*Authenticator, *state.File) {
	t.Helper()
	st, err := state.Open(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	cfg := &config.Config{SessionSecret: "test-secret", Admin: admin}
	return New(cfg, st), st
}

func TestLogin_PlainPasswordFallback(t *testing.T) {
	a, st := newAuthenticator(t, config.AdminConfig{
		Email:    "admin@kth.com",
		Password: "test123",
	})

	token, err := a.Login("admin@kth.com", "test123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, st.AdminToken())

	claims, err := a.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@kth.com", claims.Email)
}

func TestLogin_BcryptHashPreferred(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cure"), bcrypt.MinCost)
	require.NoError(t, err)

	a, _ := newAuthenticator(t, config.AdminConfig{
		Email:        "admin@kth.com",
		Password:     "ignored-when-hash-set",
		PasswordHash: string(hash),
	})

	_, err = a.Login("admin@kth.com", "s3cure")
	assert.NoError(t, err)

	_, err = a.Login("admin@kth.com", "ignored-when-hash-set")
	assert.Error(t, err)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	a, st := newAuthenticator(t, config.AdminConfig{
		Email:    "admin@kth.com",
		Password: "test123",
	})

	_, err := a.Login("someone@else.com", "test123")
	assert.Error(t, err)

	_, err = a.Login("admin@kth.com", "wrong")
	assert.Error(t, err)
	assert.Empty(t, st.AdminToken())
}

func TestValidate_RejectsForgedToken(t *testing.T) {
	a, _ := newAuthenticator(t, config.AdminConfig{Email: "admin@kth.com", Password: "x"})

	_, err := a.Validate("not-a-token")
	assert.Error(t, err)

	// Token signed with a different secret must not validate.
	other, otherSt := newAuthenticator(t, config.AdminConfig{Email: "admin@kth.com", Password: "x"})
	_ = otherSt
	other.secret = []byte("different-secret")
	forged, err := other.generateToken("admin@kth.com")
	require.NoError(t, err)

	_, err = a.Validate(forged)
	assert.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	a, _ := newAuthenticator(t, config.AdminConfig{Email: "admin@kth.com", Password: "test123"})

	_, err := a.Session()
	assert.Error(t, err)

	_, err = a.Login("admin@kth.com", "test123")
	require.NoError(t, err)

	claims, err := a.Session()
	require.NoError(t, err)
	assert.Equal(t, "admin@kth.com", claims.Email)

	require.NoError(t, a.Logout())
	_, err = a.Session()
	assert.Error(t, err)
}

// Package auth implements the admin session: a local credential check that
// mints a signed token, persisted in the client state file. The backend never
// verifies the token; possession of a valid signature is the whole session,
// which keeps this a demo-grade mechanism by construction.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/kthsports/storefront/internal/config"
	"github.com/kthsports/storefront/internal/state"
	"github.com/kthsports/storefront/internal/utils"
)

// SessionTTL is how long a minted session token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// SessionClaims are the JWT claims carried by an admin session token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticator checks admin credentials and manages the persisted session.
type Authenticator struct {
	admin  config.AdminConfig
	secret []byte
	state  *state.File
}

// New constructs an Authenticator from config and the state file.
func New(cfg *config.Config, st *state.File) *Authenticator {
	return &Authenticator{
		admin:  cfg.Admin,
		secret: []byte(cfg.SessionSecret),
		state:  st,
	}
}

// Login verifies the credentials, mints a session token, and persists it.
// When ADMIN_PASSWORD_HASH is set the password is checked with bcrypt;
// otherwise it falls back to a plain comparison against ADMIN_PASSWORD.
func (a *Authenticator) Login(email, password string) (string, error) {
	log.Debug().Str("email", email).Msg("Login attempt")

	if email != a.admin.Email {
		log.Warn().Str("email", email).Msg("Unknown admin email")
		return "", utils.ErrInvalidCredentials
	}

	if a.admin.PasswordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(a.admin.PasswordHash), []byte(password)); err != nil {
			log.Warn().Str("email", email).Msg("Password verification failed")
			return "", utils.ErrInvalidCredentials
		}
	} else if password != a.admin.Password {
		log.Warn().Str("email", email).Msg("Password verification failed")
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.generateToken(email)
	if err != nil {
		return "", err
	}
	if err := a.state.SetAdminToken(token); err != nil {
		return "", err
	}

	log.Info().Str("email", email).Msg("Login successful")
	return token, nil
}

// Logout clears the persisted session token. Any in-flight request keeps
// running; nothing is cancelled.
func (a *Authenticator) Logout() error {
	return a.state.SetAdminToken("")
}

// Validate parses and verifies a session token.
func (a *Authenticator) Validate(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, utils.ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, utils.ErrInvalidToken
	}
	return claims, nil
}

// Session returns the claims of the persisted session token, or an error when
// no valid session exists.
func (a *Authenticator) Session() (*SessionClaims, error) {
	token := a.state.AdminToken()
	if token == "" {
		return nil, utils.ErrNotLoggedIn
	}
	return a.Validate(token)
}

func (a *Authenticator) generateToken(email string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
			Issuer:    "storefront",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

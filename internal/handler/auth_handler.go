package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kthsports/storefront/internal/auth"
	"github.com/kthsports/storefront/internal/utils"
)

// AuthHandler serves admin login and logout.
type AuthHandler struct {
	authenticator *auth.Authenticator
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authenticator *auth.Authenticator) *AuthHandler {
	return &AuthHandler{authenticator: authenticator}
}

// Login checks the credentials and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.Error(c, 400, "INVALID_BODY", "Invalid request body")
		return
	}

	token, err := h.authenticator.Login(body.Email, body.Password)
	if err != nil {
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{"token": token})
}

// Logout clears the persisted session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authenticator.Logout(); err != nil {
		utils.Error(c, 500, "LOGOUT_FAILED", "Failed to clear session")
		return
	}
	utils.Success(c, 200, "Logged out", nil)
}

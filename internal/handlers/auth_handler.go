package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/chloegtg3005/moneyTrusted/internal/errors"
	"github.com/chloegtg3005/moneyTrusted/internal/middleware"
	"github.com/chloegtg3005/moneyTrusted/internal/models"
	"github.com/chloegtg3005/moneyTrusted/internal/services"
)

// AuthHandler handles authentication and profile requests.
type AuthHandler struct {
	userService services.UserServicer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService services.UserServicer) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Identifier string `json:"identifier" binding:"required,max=255"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
	Invite     string `json:"invite" binding:"max=32"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// PayoutAccountRequest represents the payout destination payload
type PayoutAccountRequest struct {
	Type   models.PayoutAccountType `json:"type" binding:"required,payout_account_type"`
	Number string                   `json:"number" binding:"required,max=64"`
	Name   string                   `json:"name" binding:"required,max=128"`
}

// ChangePasswordRequest represents the password change payload
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// UserResponse represents the user data in responses
type UserResponse struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	InviteCode string `json:"invite_code"`
	Balance    int64  `json:"balance"`
}

// AuthResponse represents the authentication response with token
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func userJSON(user *models.User) gin.H {
	out := gin.H{
		"id":          user.ID,
		"identifier":  user.Identifier,
		"invite_code": user.InviteCode,
		"balance":     user.Balance,
	}
	if user.HasPayoutAccount() {
		out["payout_account"] = gin.H{
			"type":   user.PayoutAccountType,
			"number": user.PayoutAccountNumber,
			"name":   user.PayoutAccountName,
		}
	}
	return out
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with an identifier (email or phone) and password
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} AuthResponse "User registered and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Identifier already registered"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.Register(req.Identifier, req.Password, req.Invite)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userJSON(user),
	})
}

// Login handles user login
// @Summary     Login user
// @Description Authenticate a user and get a token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "User authenticated and token generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.GetUserByIdentifier(req.Identifier)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	if !h.userService.VerifyPassword(user, req.Password) {
		respondWithError(c, apperrors.ErrInvalidCredentials)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  userJSON(user),
	})
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile, invite code, and balance
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// SetPayoutAccount stores the withdrawal destination
// @Summary     Set payout account
// @Description Store the bank or e-wallet destination withdrawals are paid to
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body PayoutAccountRequest true "Payout destination"
// @Success     200 {object} UserResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/payout-account [put]
func (h *AuthHandler) SetPayoutAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PayoutAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.SetPayoutAccount(userID, req.Type, req.Number, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}

// ChangePassword replaces the user's password
// @Summary     Change password
// @Description Verify the current password and replace it
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ChangePasswordRequest true "Old and new password"
// @Success     200 {object} map[string]string "Password changed"
// @Failure     400 {object} ErrorResponse "Invalid input or wrong password"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.userService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

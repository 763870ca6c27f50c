package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mbeckert/taskboard-api/internal/dto"
	apierrors "github.com/mbeckert/taskboard-api/internal/errors"
	"github.com/mbeckert/taskboard-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new account together with its address book contact and
// token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name                string `json:"name" binding:"required"`
		Email               string `json:"email" binding:"required,email"`
		Password            string `json:"password" binding:"required"`
		ConfirmPassword     string `json:"confirmPassword" binding:"required"`
		AcceptPrivacyPolicy bool   `json:"acceptPrivacyPolicy"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Register(services.RegisterInput{
		Name:                req.Name,
		Email:               req.Email,
		Password:            req.Password,
		ConfirmPassword:     req.ConfirmPassword,
		AcceptPrivacyPolicy: req.AcceptPrivacyPolicy,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAuthResponse("User created successfully", token, *user))
}

// Login authenticates a user and returns their token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, token, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse("Login successful", token, *user))
}

// GuestLogin provisions or reuses the shared guest account and returns its
// token.
func (h *AuthHandler) GuestLogin(c *gin.Context) {
	user, token, err := h.authService.GuestLogin()
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse("Guest login successful", token, *user))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrPolicyNotAccepted):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c)
	default:
		apierrors.InternalError(c, "")
	}
}

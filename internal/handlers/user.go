package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techforing/project-tracking-api/internal/dto"
	apierrors "github.com/techforing/project-tracking-api/internal/errors"
	"github.com/techforing/project-tracking-api/internal/services"
	"github.com/techforing/project-tracking-api/internal/token"
)

// UserHandler coordinates registration, login, token refresh, and profile
// HTTP handlers.
type UserHandler struct {
	authService *services.AuthService
	userService *services.UserService
	tokens      *token.Manager
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService, userService *services.UserService, tokens *token.Manager) *UserHandler {
	return &UserHandler{
		authService: authService,
		userService: userService,
		tokens:      tokens,
	}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBindingError(c, err)
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		UserName:  req.UserName,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Password2: req.Password2,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":    dto.ToUserDTO(*user),
		"message": "User registered successfully.",
	})
}

// Login authenticates a user and issues a token pair.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBindingError(c, err)
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	pair, err := h.tokens.GeneratePair(user.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue tokens")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToUserDTO(*user),
		"message": "Login successfully!",
		"tokens":  pair,
	})
}

// RefreshToken exchanges a valid refresh token for a new pair.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondBindingError(c, err)
		return
	}

	userID, err := h.tokens.Verify(req.Refresh, token.TypeRefresh)
	if err != nil {
		apierrors.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	// Reject tokens whose subject no longer exists.
	if _, err := h.userService.Get(userID); err != nil {
		respondUserError(c, err)
		return
	}

	pair, err := h.tokens.GeneratePair(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to issue tokens")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully.",
		"tokens":  pair,
	})
}

// GetProfile returns a user profile by ID.
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToUserDTO(*user),
		"message": fmt.Sprintf("User profile of id %d fetched successfully.", user.ID),
	})
}

// UpdateProfile applies a partial update to a user profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	// Parse raw JSON to detect which fields were sent
	var rawReq map[string]any
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if v, ok := rawReq["user_name"].(string); ok {
		user.UserName = v
	}
	if v, ok := rawReq["email"].(string); ok {
		if !apierrors.ValidEmail(v) {
			apierrors.FieldErrors{"email": {"Enter a valid email address."}}.Respond(c)
			return
		}
		user.Email = v
	}
	if v, ok := rawReq["first_name"].(string); ok {
		user.FirstName = v
	}
	if v, ok := rawReq["last_name"].(string); ok {
		user.LastName = v
	}

	if err := h.userService.Update(user); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    dto.ToUserDTO(*user),
		"message": fmt.Sprintf("User profile of id %d updated successfully.", user.ID),
	})
}

// DeleteProfile removes a user account and everything referencing it.
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(id); err != nil {
		respondUserError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.FieldErrors{"email": {"Email is already in use."}}.Respond(c)
	case errors.Is(err, services.ErrUserNameTaken):
		apierrors.FieldErrors{"user_name": {"Username is already in use."}}.Respond(c)
	case errors.Is(err, services.ErrPasswordMismatch):
		apierrors.FieldErrors{"password": {"Passwords must match."}}.Respond(c)
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found.")
	case errors.Is(err, services.ErrFailedToHashPassword):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookreview-backend/internal/domains/user/model"
	"bookreview-backend/internal/domains/user/service"
	"bookreview-backend/internal/shared/middleware"
	"bookreview-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates an account
// POST /api/v1/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"email": model.ErrEmailTaken.Error()})
			return
		}
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login issues an access/refresh token pair
// POST /api/v1/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// RefreshToken exchanges a refresh token for a new access token
// POST /api/v1/token/refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	access, err := h.userService.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		response.Detail(c, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	c.JSON(http.StatusOK, access)
}

// VerifyToken checks a token signature and expiry
// POST /api/v1/token/verify
func (h *UserHandler) VerifyToken(c *gin.Context) {
	var req model.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.Verify(req.Token); err != nil {
		response.Detail(c, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// ChangePassword rotates the caller's own password
// PUT /api/v1/change-password/:username
func (h *UserHandler) ChangePassword(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.userService.ChangePassword(c.Request.Context(), callerID, c.Param("username"), req)
	if err != nil {
		if errors.Is(err, model.ErrWrongOldPassword) {
			c.JSON(http.StatusBadRequest, gin.H{"old_password": model.ErrWrongOldPassword.Error()})
			return
		}
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// UpdateProfile updates the caller's own username/email
// PUT /api/v1/update-profile/:username
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	callerID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthenticated(c)
		return
	}

	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), callerID, c.Param("username"), req)
	if err != nil {
		h.mapError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// mapError translates domain errors into HTTP responses.
func (h *UserHandler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Detail(c, http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c)
	case errors.Is(err, model.ErrNotSelf):
		response.Forbidden(c)
	default:
		if _, ok := err.(validation.Errors); ok {
			response.ValidationError(c, err)
			return
		}
		response.ServerError(c, err)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todolist/internal/adapter/http/dto"
	"todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/http/validation"
	"todolist/internal/core/domain"
	"todolist/internal/core/ports"
	"todolist/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
	devMode     bool
}

func NewAuthHandler(authService ports.AuthService, devMode bool) *AuthHandler {
	return &AuthHandler{authService: authService, devMode: devMode}
}

// Register creates a user. The PIN is optional; when given it must be
// exactly four digits.
func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPin, lang),
		)
		return
	}

	var pin *string
	if req.Pin != nil && *req.Pin != "" {
		if !validation.ValidPin(*req.Pin) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPin, lang),
			)
			return
		}
		pin = req.Pin
	}

	userID, err := h.authService.Register(c.Request.Context(), pin)
	if err != nil {
		zap.L().Error("failed to register user", zap.Error(err))
		h.serverError(c, apierrors.MsgFailRegister, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:  userID,
		Message: "User created successfully",
		HasPin:  pin != nil,
	})
}

// Login resolves a 4-digit PIN to a user id. That id is the whole
// session context; no token is issued.
func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || !validation.ValidPin(req.Pin) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPin, lang),
		)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Pin)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPin) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgLoginFailed, lang),
			)
			return
		}

		zap.L().Error("failed to login", zap.Error(err))
		h.serverError(c, apierrors.MsgFailLogin, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		UserID:  user.ID,
		Message: "Login successful",
	})
}

func (h *AuthHandler) serverError(c *gin.Context, msgKey string, err error) {
	lang := middleware.GetLang(c)
	if h.devMode {
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateErrorWithDetail(http.StatusInternalServerError, msgKey, lang, err.Error()),
		)
		return
	}
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, msgKey, lang),
	)
}

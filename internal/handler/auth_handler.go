package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gogomedia/internal/auth"
	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/service"
	"gogomedia/internal/validation"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) credentials(c echo.Context) (validation.Credentials, error) {
	body, err := readBody(c)
	if err != nil {
		return validation.Credentials{}, err
	}
	creds, err := validation.ParseCredentials(body)
	if err != nil {
		return creds, err
	}
	if err := c.Validate(&creds); err != nil {
		return creds, err
	}
	return creds, nil
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.Credentials true "Registration data"
// @Success 201 {object} errors.Envelope
// @Success 200 {object} errors.Envelope "username taken"
// @Failure 422 {object} errors.Envelope
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	creds, err := h.credentials(c)
	if err != nil {
		return RespondError(c, err)
	}

	_, token, err := h.authService.Register(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		return RespondError(c, err)
	}

	return respondOK(c, http.StatusCreated, apperrors.Envelope{AuthToken: token})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body validation.Credentials true "Login credentials"
// @Success 200 {object} errors.Envelope
// @Failure 422 {object} errors.Envelope
// @Failure 429 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	creds, err := h.credentials(c)
	if err != nil {
		return RespondError(c, err)
	}

	_, token, err := h.authService.Login(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		return RespondError(c, err)
	}

	return respondOK(c, http.StatusOK, apperrors.Envelope{AuthToken: token})
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the presented token. Succeeds without a token.
// @Tags auth
// @Produce json
// @Success 200 {object} errors.Envelope
// @Security BearerAuth
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := auth.TokenFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return RespondError(c, err)
	}
	return respondOK(c, http.StatusOK, apperrors.Envelope{})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gogomedia/internal/errors"
	"gogomedia/internal/service"
	"gogomedia/internal/validation"
)

// MediaHandler serves /user/:username/media. The router resolves and
// authorizes the owner before these run.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upsert godoc
// @Summary Add or update a media item
// @Tags media
// @Accept json
// @Produce json
// @Param username path string true "Owner"
// @Param request body UpsertMediaRequest true "Media item"
// @Success 200 {object} errors.Envelope{data=model.Media}
// @Failure 401 {object} errors.Envelope
// @Failure 422 {object} errors.Envelope
// @Security BearerAuth
// @Router /user/{username}/media [put]
func (h *MediaHandler) Upsert(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return RespondError(c, err)
	}
	name, patch, err := validation.ParseUpsertBody(body)
	if err != nil {
		return RespondError(c, err)
	}

	media, err := h.mediaService.Upsert(c.Request().Context(), Owner(c).Username, name, patch)
	if err != nil {
		return RespondError(c, err)
	}
	return respondOK(c, http.StatusOK, apperrors.Envelope{Data: media})
}

// List godoc
// @Summary List media items
// @Tags media
// @Produce json
// @Param username path string true "Owner"
// @Param consumed-state query string false "not started, started or finished"
// @Param medium query string false "film, audio, literature or other"
// @Success 200 {object} errors.Envelope{data=[]model.Media}
// @Failure 401 {object} errors.Envelope
// @Failure 422 {object} errors.Envelope
// @Security BearerAuth
// @Router /user/{username}/media [get]
func (h *MediaHandler) List(c echo.Context) error {
	filter, err := validation.ParseMediaQuery(c.QueryParams())
	if err != nil {
		return RespondError(c, err)
	}

	media, err := h.mediaService.GetFiltered(c.Request().Context(), Owner(c).Username, filter)
	if err != nil {
		return RespondError(c, err)
	}
	return respondOK(c, http.StatusOK, apperrors.Envelope{Data: media})
}

// Remove godoc
// @Summary Remove a media item
// @Description Removing an item that does not exist succeeds.
// @Tags media
// @Accept json
// @Produce json
// @Param username path string true "Owner"
// @Param request body RemoveMediaRequest true "Media name"
// @Success 200 {object} errors.Envelope
// @Failure 401 {object} errors.Envelope
// @Failure 422 {object} errors.Envelope
// @Security BearerAuth
// @Router /user/{username}/media [delete]
func (h *MediaHandler) Remove(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return RespondError(c, err)
	}
	name, err := validation.ParseRemoveBody(body)
	if err != nil {
		return RespondError(c, err)
	}

	if err := h.mediaService.Remove(c.Request().Context(), Owner(c).Username, name); err != nil {
		return RespondError(c, err)
	}
	return respondOK(c, http.StatusOK, apperrors.Envelope{})
}

// UpsertMediaRequest documents the PUT body.
type UpsertMediaRequest struct {
	Name          string `json:"name" example:"Dune"`
	ConsumedState string `json:"consumed_state,omitempty" enums:"not started,started,finished"`
	Medium        string `json:"medium,omitempty" enums:"film,audio,literature,other"`
}

// RemoveMediaRequest documents the DELETE body.
type RemoveMediaRequest struct {
	Name string `json:"name" example:"Inception"`
}

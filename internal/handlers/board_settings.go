package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/mbeckert/taskboard-api/internal/errors"
	"github.com/mbeckert/taskboard-api/internal/models"
	"github.com/mbeckert/taskboard-api/internal/services"
)

// BoardSettingsHandler coordinates board settings HTTP handlers. Detail
// routes address rows by userId, not by row id.
type BoardSettingsHandler struct {
	settingsService *services.BoardSettingsService
}

// NewBoardSettingsHandler creates a new BoardSettingsHandler.
func NewBoardSettingsHandler(settingsService *services.BoardSettingsService) *BoardSettingsHandler {
	return &BoardSettingsHandler{
		settingsService: settingsService,
	}
}

type boardSettingsRequest struct {
	UserID      string `json:"userId" binding:"required"`
	ViewMode    string `json:"viewMode"`
	LastChanged string `json:"lastChanged"`
}

type boardSettingsPatchRequest struct {
	ViewMode    *string `json:"viewMode"`
	LastChanged *string `json:"lastChanged"`
}

// List returns all board settings rows.
func (h *BoardSettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch board settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Create creates settings for a user. A user that already has a row gets a
// conflict, never a merge.
func (h *BoardSettingsHandler) Create(c *gin.Context) {
	var req boardSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	settings := models.BoardSettings{
		UserID:      req.UserID,
		ViewMode:    req.ViewMode,
		LastChanged: req.LastChanged,
	}

	if err := h.settingsService.Create(&settings); err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusCreated, settings)
}

// Get returns the settings row for the userId in the path.
func (h *BoardSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Param("userId"))
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Update replaces viewMode and lastChanged for the userId in the path. The
// userId itself is immutable.
func (h *BoardSettingsHandler) Update(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Param("userId"))
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	var req boardSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	settings.ViewMode = req.ViewMode
	if settings.ViewMode == "" {
		settings.ViewMode = "public"
	}
	settings.LastChanged = req.LastChanged

	if err := h.settingsService.Update(settings); err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Patch updates only the fields present in the request body.
func (h *BoardSettingsHandler) Patch(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Param("userId"))
	if err != nil {
		respondSettingsError(c, err)
		return
	}

	var req boardSettingsPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.ViewMode != nil {
		settings.ViewMode = *req.ViewMode
	}
	if req.LastChanged != nil {
		settings.LastChanged = *req.LastChanged
	}

	if err := h.settingsService.Update(settings); err != nil {
		respondSettingsError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Delete removes the settings row for the userId in the path.
func (h *BoardSettingsHandler) Delete(c *gin.Context) {
	if err := h.settingsService.Delete(c.Param("userId")); err != nil {
		respondSettingsError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondSettingsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSettingsNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUserIDTaken):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}

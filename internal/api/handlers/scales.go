package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Conceptual-Machines/scales-api/internal/logger"
	"github.com/Conceptual-Machines/scales-api/internal/models"
	"github.com/Conceptual-Machines/scales-api/internal/services"
	"github.com/Conceptual-Machines/scales-api/internal/theory"
	"github.com/gin-gonic/gin"
)

type ScaleHandler struct {
	service *services.ScaleService
}

func NewScaleHandler(service *services.ScaleService) *ScaleHandler {
	return &ScaleHandler{service: service}
}

// List returns every built-in scale and mode
func (h *ScaleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListScales())
}

// Get generates a scale from path parameters
// GET /api/v1/scales/:root/:type?octave=4&direction=up
// GET /api/v1/scales/:root/:type?start=Bb3
func (h *ScaleHandler) Get(c *gin.Context) {
	req := models.ScaleRequest{
		Root:      c.Param("root"),
		Type:      c.Param("type"),
		Start:     c.Query("start"),
		Direction: c.Query("direction"),
	}

	if raw := c.Query("octave"); raw != "" {
		octave, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, errorKindInvalidRequest, "octave must be an integer")
			return
		}
		req.Octave = &octave
	}

	h.generate(c, req)
}

// Generate generates a scale from a JSON body
func (h *ScaleHandler) Generate(c *gin.Context) {
	var req models.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errorKindInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	h.generate(c, req)
}

func (h *ScaleHandler) generate(c *gin.Context, req models.ScaleRequest) {
	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		handleScaleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GenerateCustom generates a scale from caller-supplied steps
func (h *ScaleHandler) GenerateCustom(c *gin.Context) {
	var req models.CustomScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errorKindInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.GenerateCustom(c.Request.Context(), req)
	if err != nil {
		handleScaleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ParseDisplay splits a display string into its header and notes
func (h *ScaleHandler) ParseDisplay(c *gin.Context) {
	var req models.ParseDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errorKindInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.service.ParseDisplay(req)
	if err != nil {
		handleScaleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleScaleError maps theory errors to 400s; anything else is a 500
func handleScaleError(c *gin.Context, err error) {
	var pitchErr *theory.UnknownPitchError
	var typeErr *theory.UnknownScaleTypeError

	switch {
	case errors.As(err, &pitchErr):
		respondError(c, http.StatusBadRequest, errorKindUnknownPitch, err.Error())
	case errors.As(err, &typeErr):
		respondError(c, http.StatusBadRequest, errorKindUnknownScaleType, err.Error())
	case errors.Is(err, theory.ErrInvalidPattern):
		respondError(c, http.StatusBadRequest, errorKindInvalidPattern, err.Error())
	case errors.Is(err, theory.ErrInvalidDirection):
		respondError(c, http.StatusBadRequest, errorKindInvalidDirection, err.Error())
	case errors.Is(err, theory.ErrOctaveOutOfRange):
		respondError(c, http.StatusBadRequest, errorKindOctaveOutOfRange, err.Error())
	case errors.Is(err, theory.ErrInvalidNoteName), errors.Is(err, services.ErrStartMismatch):
		respondError(c, http.StatusBadRequest, errorKindInvalidRequest, err.Error())
	case errors.Is(err, theory.ErrMalformedDisplay):
		respondError(c, http.StatusBadRequest, errorKindMalformedDisplay, err.Error())
	default:
		logger.Error("Scale request failed", err, logger.WithContext(c))
		respondError(c, http.StatusInternalServerError, errorKindInternal, "Internal server error")
	}
}

func respondError(c *gin.Context, status int, kind, message string) {
	c.JSON(status, models.ErrorResponse{
		Error:     kind,
		Message:   message,
		RequestID: c.GetString("request_id"),
	})
}

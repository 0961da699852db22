package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/interview"
	"github.com/spigell/interview-insights/internal/logger"
	"github.com/spigell/interview-insights/internal/store"
)

type handler struct {
	summarizer summarizer
	store      interviewStore
	logger     *zap.Logger
}

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// SummarizeInterview summarizes an interview posted as the request body.
func (h *handler) SummarizeInterview(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_json", err)
		return
	}

	iv, err := interview.DecodeInterview(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_interview", err)
		return
	}

	h.summarize(c, iv)
}

// SummarizeStored summarizes a previously imported interview.
func (h *handler) SummarizeStored(c *gin.Context) {
	id := c.Param("id")

	iv, err := h.store.GetInterview(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		RespondError(c, http.StatusNotFound, "not_found", err)
		return
	}
	if err != nil {
		logger.WithFields(h.logger, zap.String(logger.FieldInterviewID, id)).
			Error("loading interview failed", zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "store_error", err)
		return
	}

	h.summarize(c, iv)
}

func (h *handler) summarize(c *gin.Context, iv interview.Interview) {
	summary, err := h.summarizer.Summarize(c.Request.Context(), iv)
	if errors.Is(err, interview.ErrNoSections) {
		RespondError(c, http.StatusUnprocessableEntity, "no_sections", err)
		return
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "summarize_failed", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

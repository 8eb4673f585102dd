package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/chainsight/internal/service"
)

type PipelineHandler struct {
	pipeline *service.PipelineService
}

func NewPipelineHandler(pipeline *service.PipelineService) *PipelineHandler {
	return &PipelineHandler{pipeline: pipeline}
}

// TriggerRun starts a full pipeline run in the background.
func (h *PipelineHandler) TriggerRun(c *gin.Context) {
	if err := h.pipeline.Trigger(c.Request.Context()); err != nil {
		if errors.Is(err, service.ErrRunInProgress) {
			c.JSON(http.StatusConflict, gin.H{"error": "a pipeline run is already in progress"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start pipeline run"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "started"})
}

// GetStatus reports the state of the most recent pipeline run.
func (h *PipelineHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.pipeline.Status())
}

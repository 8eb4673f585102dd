package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/andresuchdata/chainsight/internal/service"
)

type DashboardHandler struct {
	dashboards *service.DashboardService
}

func NewDashboardHandler(dashboards *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboards: dashboards}
}

// ListTables returns the names of the materialized dashboard tables.
func (h *DashboardHandler) ListTables(c *gin.Context) {
	names, err := h.dashboards.Tables()
	if err != nil {
		log.Error().Err(err).Msg("failed to list dashboard tables")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list dashboard tables"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tables": names})
}

// GetTable returns one dashboard table as JSON rows.
func (h *DashboardHandler) GetTable(c *gin.Context) {
	name := c.Param("table")

	payload, ok, err := h.dashboards.Table(c.Request.Context(), name)
	if err != nil {
		log.Error().Err(err).Str("table", name).Msg("failed to load dashboard table")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load dashboard table"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown dashboard table"})
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// InvalidateCache drops every cached dashboard table.
func (h *DashboardHandler) InvalidateCache(c *gin.Context) {
	if err := h.dashboards.Invalidate(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("failed to invalidate dashboard cache")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not invalidate cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "invalidated"})
}

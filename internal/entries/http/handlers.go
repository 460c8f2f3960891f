package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/domain"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/entries/service"
	"github.com/GoSim-25-26J-441/mongo-gateway/internal/logging"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for entries
type Handler struct {
	entries  *service.EntryService
	database string
}

// New creates a new Handler. database is reported verbatim by GetStatus.
func New(entries *service.EntryService, database string) *Handler {
	return &Handler{
		entries:  entries,
		database: database,
	}
}

// GetStatus reports readiness without touching the database
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:   StatusConnected,
		Database: h.database,
	})
}

// StoreEntry writes one entry
func (h *Handler) StoreEntry(c *gin.Context) {
	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.NewLogger(c.Request.Context()).LogInfof("store_entry", "rejected body: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	id, err := h.entries.StoreEntry(c.Request.Context(), domain.Entry{
		Title:   *req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEntry) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store entry"})
		return
	}

	c.JSON(http.StatusOK, StoreResponse{
		Message: MessageSaved,
		ID:      id,
	})
}

// FetchEntries returns up to 100 stored documents as a bare JSON array
func (h *Handler) FetchEntries(c *gin.Context) {
	docs, err := h.entries.FetchEntries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch entries"})
		return
	}

	c.JSON(http.StatusOK, docs)
}

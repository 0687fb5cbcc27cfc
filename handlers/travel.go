package handlers

import (
	"net/http"

	"voyago/models"
	ai "voyago/services/intelligence"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TravelHandler exposes the travel concierge service over HTTP.
type TravelHandler struct {
	Service ai.TravelService
}

func NewTravelHandler(svc ai.TravelService) *TravelHandler {
	return &TravelHandler{Service: svc}
}

// QueryHandler handles POST /api/travel/query. Whatever happens on the model
// side, a well-formed request gets a 200 with a renderable envelope; only
// malformed input is rejected.
func (h *TravelHandler) QueryHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.TravelQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid travel query request", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	env, err := h.Service.Handle(c.Request.Context(), req)
	if err != nil {
		logger.Error("Travel service failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process query", err.Error())
		return
	}

	c.Header("X-Session-ID", req.SessionID)
	c.JSON(http.StatusOK, env)
}

// HistoryHandler handles GET /api/travel/history/:sessionID.
func (h *TravelHandler) HistoryHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	msgs, err := h.Service.History(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("Failed to load chat history", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load history", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		SessionID: sessionID,
		Messages:  msgs,
	})
}

// ClearHistoryHandler handles DELETE /api/travel/history/:sessionID.
func (h *TravelHandler) ClearHistoryHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	if err := h.Service.ClearHistory(c.Request.Context(), sessionID); err != nil {
		logger.Error("Failed to clear chat history", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to clear history", err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dorilab/dori/internal/pkg/response"
	"github.com/dorilab/dori/internal/tour"
)

// TourHandler reports the live tour session for monitoring.
type TourHandler struct {
	engine *tour.Engine
}

func NewTourHandler(engine *tour.Engine) *TourHandler {
	return &TourHandler{engine: engine}
}

func (h *TourHandler) Status(c *gin.Context) {
	session := h.engine.Session()
	if session == nil {
		response.Success(c, gin.H{"state": tour.StateIdle})
		return
	}
	response.Success(c, session.Snapshot())
}

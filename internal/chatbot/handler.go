package chatbot

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chatbot/ask", h.ask)
	rg.GET("/chatbot/resources", h.resources)
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}

	answer, err := h.Svc.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, ErrEmptyQuestion) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "chatbot_unavailable", "failed to answer question", nil)
		return
	}
	respond.OK(c, gin.H{"answer": answer})
}

func (h *Handler) resources(c *gin.Context) {
	respond.OK(c, Resources)
}

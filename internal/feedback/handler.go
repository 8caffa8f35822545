package feedback

import (
	"net/http"
	"strings"

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
	rg.POST("/feedback/analyze", h.analyze)
}

type analyzeRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Feedback) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "feedback cannot be empty", nil)
		return
	}

	respond.OK(c, h.Svc.Analyze(c.Request.Context(), req.Feedback))
}

package courses

import (
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
	rg.POST("/courses/recommend", h.recommend)
}

type recommendRequest struct {
	ResumeText string `json:"resume_text" binding:"required"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text is required", nil)
		return
	}

	respond.OK(c, h.Svc.Recommend(c.Request.Context(), req.ResumeText))
}

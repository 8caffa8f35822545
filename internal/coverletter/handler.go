package coverletter

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
	rg.POST("/cover-letters", h.generate)
}

type generateRequest struct {
	ResumeText     string `json:"resume_text" binding:"required"`
	JobDescription string `json:"job_description" binding:"required"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume_text and job_description are required", nil)
		return
	}

	letter := h.Svc.Generate(c.Request.Context(), req.ResumeText, req.JobDescription)
	respond.OK(c, gin.H{"cover_letter": letter})
}

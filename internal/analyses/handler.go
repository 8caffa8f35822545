package analyses

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/jobs"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/server/middleware"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/server/respond"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

const defaultJobQuery = "Software Engineer"

// maxUploadBytes caps resume uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// Handler wires the analysis endpoints to the service.
type Handler struct {
	Svc      *Service
	Searcher jobs.Searcher
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, searcher jobs.Searcher) *Handler {
	return &Handler{Svc: svc, Searcher: searcher}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/analyze", h.analyzeResume)
	rg.POST("/jobs/match", h.matchJobs)
}

func (h *Handler) analyzeResume(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)

	fileName, fileData, ok := h.readUpload(c)
	if !ok {
		return
	}
	jobDescription := c.PostForm("job_description")

	result, err := h.Svc.AnalyzeResume(c.Request.Context(), ownerID, fileName, fileData, jobDescription)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	respond.OK(c, result)
}

func (h *Handler) matchJobs(c *gin.Context) {
	ownerID := middleware.OwnerIDFromContext(c)

	fileName, fileData, ok := h.readUpload(c)
	if !ok {
		return
	}
	query := c.PostForm("query")
	if query == "" {
		query = defaultJobQuery
	}
	location := c.PostForm("location")

	listings, err := h.Searcher.Search(c.Request.Context(), query, location)
	if err != nil {
		// A dead provider degrades to zero listings, not a failed request.
		telemetry.Warn("jobs.search_failed", map[string]any{
			"query": query,
			"cause": err.Error(),
		})
		listings = []jobs.Listing{}
	}

	matches, err := h.Svc.ScoreAgainstListings(c.Request.Context(), ownerID, fileName, fileData, listings)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	matched := make([]gin.H, 0, len(matches))
	for _, m := range matches {
		matched = append(matched, gin.H{
			"title":          m.Listing.Title,
			"company":        m.Listing.Company,
			"location":       m.Listing.Location,
			"url":            m.Listing.URL,
			"atsScore":       m.Result.ATSScore,
			"matchingScore":  m.Result.AIMatchScore,
			"matchedSkills":  m.Result.MatchedSkills,
			"missingSkills":  m.Result.MissingSkills,
			"recommendation": m.Result.Recommendation,
		})
	}
	respond.OK(c, gin.H{"success": true, "jobs": matched})
}

// readUpload pulls the "resume" file out of the multipart form. On failure it
// writes the error response and returns ok=false.
func (h *Handler) readUpload(c *gin.Context) (string, []byte, bool) {
	header, err := c.FormFile("resume")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume file required", nil)
		return "", nil, false
	}
	if header.Size > maxUploadBytes {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "resume file too large", nil)
		return "", nil, false
	}

	data, err := readAll(header)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "failed to read resume file", nil)
		return "", nil, false
	}
	return header.Filename, data, true
}

func readAll(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
}

func (h *Handler) respondServiceError(c *gin.Context, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, verr.Message, nil)
		return
	}
	respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to analyze resume", nil)
}

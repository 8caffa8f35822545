package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/ats"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/extract"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/jobs"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/resumes"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/metrics"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
	"github.com/Aryaagasti/FinalYearMcaBackend/internal/textproc"
)

const defaultListingWorkers = 4

// Service orchestrates the analysis pipeline: extract, AI analysis, lexical
// score, keywords, best-effort persistence. Validation failures (steps 1-3)
// are terminal; every later step completes with safe defaults.
type Service struct {
	Repo     resumes.Repo
	Analyzer *Analyzer

	// MaxListingWorkers bounds per-listing scoring concurrency in the bulk
	// match flow. Zero means defaultListingWorkers.
	MaxListingWorkers int
}

// NewService constructs a Service.
func NewService(repo resumes.Repo, analyzer *Analyzer, maxListingWorkers int) *Service {
	if analyzer == nil {
		analyzer = NewAnalyzer(nil)
	}
	return &Service{Repo: repo, Analyzer: analyzer, MaxListingWorkers: maxListingWorkers}
}

// AnalyzeResume runs the full pipeline for one resume against one job
// description and persists a history record for the owner.
func (s *Service) AnalyzeResume(ctx context.Context, ownerID, fileName string, fileData []byte, jobDescription string) (Result, error) {
	metrics.IncAnalysisStarted()
	started := time.Now()

	if strings.TrimSpace(fileName) == "" || len(fileData) == 0 {
		metrics.IncAnalysisRejected()
		return Result{}, validationErr("resume file required")
	}
	if strings.TrimSpace(jobDescription) == "" {
		metrics.IncAnalysisRejected()
		return Result{}, validationErr("job description required")
	}

	resumeText := extract.FromBytes(fileData, fileName)
	if strings.TrimSpace(resumeText) == "" {
		metrics.IncAnalysisRejected()
		return Result{}, validationErr("failed to parse resume")
	}

	result := s.analyzeText(ctx, resumeText, jobDescription)
	s.persistRecord(ctx, ownerID, resumeText, result)

	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	return result, nil
}

// ScoreAgainstListings scores one resume against every listing. Listings are
// scored concurrently but the returned matches preserve input order. Zero
// listings yield an empty result, not an error.
func (s *Service) ScoreAgainstListings(ctx context.Context, ownerID, fileName string, fileData []byte, listings []jobs.Listing) ([]ListingMatch, error) {
	if strings.TrimSpace(fileName) == "" || len(fileData) == 0 {
		return nil, validationErr("resume file required")
	}
	resumeText := extract.FromBytes(fileData, fileName)
	if strings.TrimSpace(resumeText) == "" {
		return nil, validationErr("failed to parse resume")
	}

	matches := make([]ListingMatch, len(listings))

	g, gctx := errgroup.WithContext(ctx)
	workers := s.MaxListingWorkers
	if workers <= 0 {
		workers = defaultListingWorkers
	}
	g.SetLimit(workers)

	for i, listing := range listings {
		i, listing := i, listing
		g.Go(func() error {
			result := s.analyzeText(gctx, resumeText, listing.Description)
			s.persistRecord(gctx, ownerID, resumeText, result)
			matches[i] = ListingMatch{Listing: listing, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return matches, nil
}

// analyzeText runs steps 4-7 of the pipeline. None of them can fail the
// request: the analyzer and scorer degrade to their own defaults.
func (s *Service) analyzeText(ctx context.Context, resumeText, jobDescription string) Result {
	ai := s.Analyzer.Analyze(ctx, resumeText, jobDescription)
	atsScore := ats.Score(resumeText, jobDescription)

	resumeKeywords := textproc.Keywords(resumeText, textproc.DefaultTopN)
	jobKeywords := textproc.Keywords(jobDescription, textproc.DefaultTopN)

	return Result{
		ATSScore:        atsScore,
		AIMatchScore:    ai.MatchScore,
		MatchedSkills:   ai.MatchedSkills,
		MissingSkills:   ai.MissingSkills,
		Recommendation:  ai.Recommendation,
		Keywords:        textproc.Intersect(resumeKeywords, jobKeywords),
		MissingKeywords: textproc.Subtract(jobKeywords, resumeKeywords),
		Suggestions:     ai.Suggestions,
	}
}

// persistRecord inserts a history record. Persistence is best-effort: a
// failure is logged and counted but the computed result is still returned.
func (s *Service) persistRecord(ctx context.Context, ownerID, resumeText string, result Result) {
	if s.Repo == nil {
		return
	}
	record := resumes.Record{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		RawText:         resumeText,
		ATSScore:        result.ATSScore,
		MatchedKeywords: result.Keywords,
		Suggestions:     result.Suggestions,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, record); err != nil {
		telemetry.Error("analysis.persist_failed", map[string]any{
			"owner_id": ownerID,
			"cause":    err.Error(),
		})
		metrics.IncPersistenceFailure()
	}
}

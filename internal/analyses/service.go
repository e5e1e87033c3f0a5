package analyses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"playlist-backend/internal/llm"
	"playlist-backend/internal/modelout"
	"playlist-backend/internal/playlist"
	"playlist-backend/internal/prompt"
	"playlist-backend/internal/shared/metrics"
	"playlist-backend/internal/shared/telemetry"
	"playlist-backend/internal/syllabus"
)

// RateLimiter is the quota policy consulted as the pipeline's first stage.
type RateLimiter interface {
	Allow(ctx context.Context, identity string) (bool, time.Time, error)
}

// Timeouts bound the three blocking external calls.
type Timeouts struct {
	Playlist time.Duration
	Model    time.Duration
	Persist  time.Duration
}

func (t Timeouts) withDefaults() Timeouts {
	if t.Playlist <= 0 {
		t.Playlist = 30 * time.Second
	}
	if t.Model <= 0 {
		t.Model = 120 * time.Second
	}
	if t.Persist <= 0 {
		t.Persist = 10 * time.Second
	}
	return t
}

// Service orchestrates the analysis pipeline. Each stage either produces
// the input for the next or terminates the run with a *StageError; there is
// no backtracking and no partial success, except that persistence is
// best-effort once recommendations exist.
type Service struct {
	Repo     Repo
	Playlist playlist.Source
	LLM      llm.Client
	Limiter  RateLimiter
	Timeouts Timeouts
}

// Analyze runs the full pipeline for one request.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	startedAt := time.Now().UTC()
	metrics.IncAnalysisStarted()

	identity := strings.TrimSpace(req.Identity)
	timeouts := s.Timeouts.withDefaults()

	// RateLimitChecked: before any external call.
	if s.Limiter != nil {
		allowed, resetsAt, err := s.Limiter.Allow(ctx, identity)
		if err != nil {
			return s.fail(startedAt, identity, stageError(StageRateLimit, ErrorCodeRateLimited, err))
		}
		if !allowed {
			return s.fail(startedAt, identity, stageError(StageRateLimit, ErrorCodeRateLimited,
				fmt.Errorf("quota exhausted until %s", resetsAt.Format(time.RFC3339))))
		}
	}

	// Authenticated
	if identity == "" {
		return s.fail(startedAt, identity, stageError(StageAuth, ErrorCodeAuthRequired,
			errors.New("requester identity is required")))
	}

	// InputValidated
	var missing []string
	if strings.TrimSpace(req.PlaylistURL) == "" {
		missing = append(missing, "playlist_url")
	}
	if strings.TrimSpace(req.Syllabus) == "" {
		missing = append(missing, "syllabus")
	}
	if len(missing) > 0 {
		return s.fail(startedAt, identity, stageError(StageValidate, ErrorCodeValidation,
			fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))))
	}

	// PlaylistFetched
	if s.Playlist == nil {
		return s.fail(startedAt, identity, stageError(StagePlaylist, ErrorCodePlaylistFetch,
			errors.New("playlist source not configured")))
	}
	var videos []playlist.Video
	err := withRetry(ctx, "playlist_fetch", func(ctx context.Context) error {
		fetchCtx, cancel := context.WithTimeout(ctx, timeouts.Playlist)
		defer cancel()
		var fetchErr error
		videos, fetchErr = s.Playlist.Fetch(fetchCtx, req.PlaylistURL)
		return fetchErr
	})
	if err != nil {
		return s.fail(startedAt, identity, stageError(StagePlaylist, ErrorCodePlaylistFetch,
			fmt.Errorf("extract playlist: %w", err)))
	}
	titles := playlist.Titles(videos)

	// TopicsExtracted and PromptBuilt are pure; they cannot fail.
	topics := syllabus.ExtractTopics(req.Syllabus)
	promptText := prompt.Build(topics, titles)

	// ModelResponded
	if s.LLM == nil {
		return s.fail(startedAt, identity, stageError(StageModel, ErrorCodeModel,
			errors.New("model client not configured")))
	}
	modelCtx, cancelModel := context.WithTimeout(ctx, timeouts.Model)
	raw, err := s.LLM.Generate(modelCtx, promptText)
	cancelModel()
	if err != nil {
		return s.fail(startedAt, identity, stageError(StageModel, ErrorCodeModel,
			fmt.Errorf("model invocation: %w", err)))
	}

	// ResponseParsed. Parsing is deterministic over already-obtained text,
	// so it is never retried; the raw output rides along for diagnosis.
	recs, err := modelout.Parse(raw)
	if err != nil {
		stageErr := stageError(StageParse, ErrorCodeParse, err)
		stageErr.RawOutput = raw
		return s.fail(startedAt, identity, stageErr)
	}

	// Persisted: best-effort. The recommendations are already computed, so
	// a storage failure degrades durability but not the response.
	record := Record{
		ID:              uuid.NewString(),
		User:            identity,
		PlaylistURL:     req.PlaylistURL,
		Syllabus:        req.Syllabus,
		VideoTitles:     titles,
		Recommendations: recs,
		CreatedAt:       time.Now().UTC(),
	}
	persisted := false
	if s.Repo != nil {
		err = withRetry(ctx, "persist", func(ctx context.Context) error {
			persistCtx, cancel := context.WithTimeout(ctx, timeouts.Persist)
			defer cancel()
			return s.Repo.Insert(persistCtx, record)
		})
		if err != nil {
			metrics.IncStoreWriteFailed()
			telemetry.Error("analysis.persist_failed", map[string]any{
				"user":      identity,
				"record_id": record.ID,
				"stage":     StagePersist,
				"code":      ErrorCodeStorage,
				"error":     err.Error(),
			})
		} else {
			persisted = true
		}
	}

	completedAt := time.Now().UTC()
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs(startedAt, completedAt))
	telemetry.Info("analysis.complete", map[string]any{
		"user":            identity,
		"record_id":       record.ID,
		"topics":          len(topics),
		"videos":          len(titles),
		"recommendations": len(recs),
		"persisted":       persisted,
		"duration_ms":     durationMs(startedAt, completedAt),
	})

	return Result{VideoTitles: titles, Recommendations: recs, Persisted: persisted}, nil
}

// Get returns a persisted record by ID.
func (s *Service) Get(ctx context.Context, recordID string) (Record, error) {
	if recordID == "" {
		return Record{}, errors.New("recordID is required")
	}
	return s.Repo.GetByID(ctx, recordID)
}

// List returns a user's past analyses, newest first.
func (s *Service) List(ctx context.Context, user string, limit, offset int) ([]Record, error) {
	if user == "" {
		return nil, errors.New("user is required")
	}
	return s.Repo.ListByUser(ctx, user, limit, offset)
}

func (s *Service) fail(startedAt time.Time, identity string, stageErr *StageError) (Result, error) {
	completedAt := time.Now().UTC()
	metrics.IncAnalysisFailed(stageErr.Stage)
	telemetry.Error("analysis.failed", map[string]any{
		"user":        identity,
		"stage":       stageErr.Stage,
		"code":        stageErr.Code,
		"error":       stageErr.Err.Error(),
		"duration_ms": durationMs(startedAt, completedAt),
	})
	return Result{}, stageErr
}

func durationMs(startedAt, completedAt time.Time) float64 {
	return float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0
}

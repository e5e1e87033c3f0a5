package analyses

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("analysis not found")

// Pipeline stages, in execution order. Every failure is attributed to
// exactly one of these. StagePersist never surfaces as a *StageError:
// persistence is best-effort, so it tags the degraded-path log line and
// counter instead.
const (
	StageRateLimit = "rate_limit"
	StageAuth      = "auth"
	StageValidate  = "validate"
	StagePlaylist  = "playlist_fetch"
	StageModel     = "model"
	StageParse     = "parse"
	StagePersist   = "persist"
)

const (
	ErrorCodeRateLimited   = "RATE_LIMIT_EXCEEDED"
	ErrorCodeAuthRequired  = "AUTHENTICATION_REQUIRED"
	ErrorCodeValidation    = "INPUT_VALIDATION_ERROR"
	ErrorCodePlaylistFetch = "PLAYLIST_FETCH_ERROR"
	ErrorCodeModel         = "MODEL_INVOCATION_ERROR"
	ErrorCodeParse         = "MODEL_OUTPUT_PARSE_ERROR"
	ErrorCodeStorage       = "STORAGE_ERROR"
)

// StageError attributes a pipeline failure to the stage that produced it.
// RawOutput is populated only for parse failures, for operator diagnosis.
type StageError struct {
	Stage     string
	Code      string
	Err       error
	RawOutput string
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage, code string, err error) *StageError {
	return &StageError{Stage: stage, Code: code, Err: err}
}

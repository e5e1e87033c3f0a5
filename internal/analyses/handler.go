package analyses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"playlist-backend/internal/shared/server/middleware"
	"playlist-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group. The analyze
// route is registered in both slash forms so neither needs a redirect.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/playlist-analyze", h.analyze)
	rg.POST("/playlist-analyze/", h.analyze)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
}

type analyzeBody struct {
	PlaylistURL string `json:"playlist_url"`
	Syllabus    string `json:"syllabus"`
}

func (h *Handler) analyze(c *gin.Context) {
	var body analyzeBody
	// A malformed body is treated as empty fields; the orchestrator's
	// validation stage reports the missing fields.
	_ = c.ShouldBindJSON(&body)

	result, err := h.Svc.Analyze(c.Request.Context(), Request{
		PlaylistURL: body.PlaylistURL,
		Syllabus:    body.Syllabus,
		Identity:    middleware.UserIDFromContext(c),
	})
	if err != nil {
		writeStageError(c, err)
		return
	}

	respond.OK(c, gin.H{"recommendations": result.Recommendations})
}

func writeStageError(c *gin.Context, err error) {
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		respond.Error(c, http.StatusInternalServerError, "Analysis failed.", err.Error())
		return
	}

	switch stageErr.Code {
	case ErrorCodeRateLimited:
		respond.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "")
	case ErrorCodeAuthRequired:
		respond.Error(c, http.StatusUnauthorized, "Authentication required.", "")
	case ErrorCodeValidation:
		respond.Error(c, http.StatusBadRequest, "playlist_url and syllabus are required.", "")
	case ErrorCodeParse:
		respond.ErrorWithRaw(c, http.StatusInternalServerError,
			"Model returned invalid output.", stageErr.Err.Error(), stageErr.RawOutput)
	case ErrorCodePlaylistFetch:
		respond.Error(c, http.StatusInternalServerError, "Error extracting playlist.", stageErr.Err.Error())
	case ErrorCodeModel:
		respond.Error(c, http.StatusInternalServerError, "Model invocation failed.", stageErr.Err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, "Analysis failed.", stageErr.Err.Error())
	}
}

func (h *Handler) getAnalysis(c *gin.Context) {
	user := middleware.UserIDFromContext(c)
	if user == "" {
		respond.Error(c, http.StatusUnauthorized, "Authentication required.", "")
		return
	}

	recordID := c.Param("id")
	record, err := h.Svc.Get(c.Request.Context(), recordID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Analysis not found.", "")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Failed to fetch analysis.", "")
		return
	}
	// Records are private to their owner; an existence check would leak.
	if record.User != user {
		respond.Error(c, http.StatusNotFound, "Analysis not found.", "")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"id":              record.ID,
		"playlist_url":    record.PlaylistURL,
		"syllabus":        record.Syllabus,
		"video_titles":    record.VideoTitles,
		"recommendations": record.Recommendations,
		"created_at":      record.CreatedAt,
	})
}

func (h *Handler) listAnalyses(c *gin.Context) {
	user := middleware.UserIDFromContext(c)
	if user == "" {
		respond.Error(c, http.StatusUnauthorized, "Authentication required.", "")
		return
	}

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	records, err := h.Svc.List(c.Request.Context(), user, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to list analyses.", "")
		return
	}

	resp := make([]gin.H, 0, len(records))
	for _, record := range records {
		resp = append(resp, gin.H{
			"id":              record.ID,
			"playlist_url":    record.PlaylistURL,
			"video_titles":    record.VideoTitles,
			"recommendations": record.Recommendations,
			"created_at":      record.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

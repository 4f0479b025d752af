package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/seogen-api/internal/api/shared"
	"github.com/phrazzld/seogen-api/internal/generation"
	"github.com/phrazzld/seogen-api/internal/platform/logger"
	"github.com/phrazzld/seogen-api/internal/redact"
	"github.com/phrazzld/seogen-api/internal/task"
)

// PromptBuilder renders the prompt for a task from its validated input.
type PromptBuilder interface {
	Build(ctx context.Context, id task.ID, input any) (string, error)
}

// GenerationRunner produces the outcome of one guarded generation.
type GenerationRunner interface {
	Run(ctx context.Context, cfg task.Config, prompt string) generation.Outcome
}

// GenerationHandler serves the two generation routes.
type GenerationHandler struct {
	registry    *task.Registry
	builder     PromptBuilder
	runner      GenerationRunner
	allowOrigin string
	logger      *slog.Logger
	now         func() time.Time
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(
	logger *slog.Logger,
	registry *task.Registry,
	builder PromptBuilder,
	runner GenerationRunner,
	allowOrigin string,
) *GenerationHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &GenerationHandler{
		registry:    registry,
		builder:     builder,
		runner:      runner,
		allowOrigin: allowOrigin,
		logger:      logger,
		now:         time.Now,
	}
}

// UpdateLongTailTitles handles POST /update-long-tail-titles.
func (h *GenerationHandler) UpdateLongTailTitles(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, task.TitleExpansion, &task.TitleExpansionInput{})
}

// GenerateArticles handles POST /generate-articles-by-new-tail-titles.
func (h *GenerationHandler) GenerateArticles(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, task.ArticleGeneration, &task.ArticleInput{})
}

// serve decodes the body into input, builds the prompt, runs generation and
// shapes the outcome.
func (h *GenerationHandler) serve(w http.ResponseWriter, r *http.Request, id task.ID, input any) {
	ctx := r.Context()
	log := logger.FromContextOrDefault(ctx, h.logger)

	body, err := shared.ReadBody(w, r)
	if err != nil {
		h.badRequest(w, r, err.Error())
		return
	}

	if err := json.Unmarshal(body, input); err != nil {
		h.badRequest(w, r, err.Error())
		return
	}

	prompt, err := h.builder.Build(ctx, id, input)
	if err != nil {
		if isClientInputError(err) {
			h.badRequest(w, r, err.Error())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	cfg, err := h.registry.ConfigFor(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	outcome := h.runner.Run(ctx, cfg, prompt)
	if !outcome.OK() {
		h.respondFailure(w, r, log, id, input, outcome.Err)
		return
	}

	h.respondSuccess(w, r, id, outcome.Text)
}

func (h *GenerationHandler) badRequest(w http.ResponseWriter, r *http.Request, message string) {
	shared.SetAllowOrigin(w, h.allowOrigin)
	shared.RespondWithError(w, r, http.StatusBadRequest, message)
}

func (h *GenerationHandler) respondSuccess(w http.ResponseWriter, r *http.Request, id task.ID, text string) {
	shared.SetCORSHeaders(w, h.allowOrigin)

	switch id {
	case task.TitleExpansion:
		shared.RespondWithJSON(w, r, http.StatusOK, TitleExpansionResponse{
			Success: true,
			Result:  CleanJSON(text),
		})
	default:
		shared.RespondWithText(w, r, http.StatusOK, "text/markdown", text)
	}
}

func (h *GenerationHandler) respondFailure(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
	id task.ID,
	input any,
	err error,
) {
	status, summary := failureStatus(err)

	log.ErrorContext(r.Context(), "generation failed",
		"error", redact.Error(err),
		"taskType", id,
		"timestamp", h.now().UTC().Format(time.RFC3339Nano),
		"inputLength", inputLength(input),
		"status_code", status)

	shared.SetAllowOrigin(w, h.allowOrigin)
	shared.RespondWithJSON(w, r, status, FailureResponse{
		Success:  false,
		Error:    summary,
		Message:  err.Error(),
		TaskType: id.String(),
	})
}

// inputLength is the size in bytes of the serialized jsonData field.
func inputLength(input any) int {
	var data any
	switch in := input.(type) {
	case *task.TitleExpansionInput:
		data = in.JSONData
	case *task.ArticleInput:
		if in.JSONData == nil {
			return 0
		}
		data = in.JSONData
	default:
		return 0
	}

	b, err := json.Marshal(data)
	if err != nil {
		return 0
	}
	return len(b)
}

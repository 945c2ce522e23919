package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/diagnostics"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/executor"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/models"
	"github.com/rs/zerolog"
)

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}

type Handler struct {
	executor *executor.Executor
	logger   *zerolog.Logger
}

func NewHandler(executor *executor.Executor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: executor,
		logger:   logger,
	}
}

// POST /api/v1/diagnostics
// Body: DiagnosticRequest
// Returns: DiagnosticReport
func (h *Handler) Diagnose(req *restful.Request, resp *restful.Response) {
	var diagRequest models.DiagnosticRequest
	if err := req.ReadEntity(&diagRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("report_id", diagRequest.ReportID).
		Int("entries", len(diagRequest.Entries)).
		Msg("Start diagnostics")

	report, err := h.executor.Execute(req.Request.Context(), diagRequest)
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case diagnostics.IsInputError(err):
			code = http.StatusBadRequest
		case errors.Is(err, req.Request.Context().Err()):
			code = http.StatusServiceUnavailable
		}
		h.logger.Warn().Err(err).Int("code", code).Str("report_id", diagRequest.ReportID).Msg("Diagnostics failed")
		middleware.HandleError(resp, err, code)
		return
	}

	h.logger.Info().
		Str("report_id", report.ID).
		Uint64("power_consumption", report.Power.Product).
		Uint64("life_support", report.LifeSupport.Product).
		Bool("cached", report.Cached).
		Msg("Diagnostics complete")

	resp.WriteHeaderAndEntity(http.StatusOK, report)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

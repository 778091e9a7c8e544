// Package handlers contains the HTTP handlers for the triage API.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turtacn/BioTriage/internal/application/triage"
	"github.com/turtacn/BioTriage/internal/domain/candidate"
	"github.com/turtacn/BioTriage/internal/infrastructure/logging"
	"github.com/turtacn/BioTriage/internal/intelligence/narrative"
)

// TriageService is the application-layer surface the handlers call into.
type TriageService interface {
	AnalyzeManual(ctx context.Context, targetID, input string) (*candidate.Result, error)
	AnalyzeAuto(ctx context.Context, targetID string) (*triage.ScanReport, error)
	AnalyzeUpload(ctx context.Context, targetID, filename string, file io.Reader) (*triage.ScanReport, error)
	Chat(ctx context.Context, req *narrative.ChatRequest) string
	Optimize(ctx context.Context, req *narrative.OptimizeRequest) *narrative.Optimization
	Progress() triage.Progress
}

// TriageHandler serves the analysis, upload, progress, chat, and optimize
// endpoints.
type TriageHandler struct {
	service        TriageService
	maxUploadBytes int64
	logger         logging.Logger
}

// NewTriageHandler creates a TriageHandler.  maxUploadBytes caps the accepted
// multipart body size; zero or negative falls back to 16 MiB.
func NewTriageHandler(service TriageService, maxUploadBytes int64, logger logging.Logger) *TriageHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &TriageHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// POST /api/v1/analyze
// ─────────────────────────────────────────────────────────────────────────────

type analyzeRequest struct {
	TargetID string `json:"target_id"`
	Mode     string `json:"mode"`   // "manual" | "auto"
	SMILES   string `json:"smiles"` // manual mode: drug name or raw SMILES
}

// Analyze dispatches a scoring request.  Manual mode scores the single
// supplied candidate; auto mode scores the whole drug catalog.
func (h *TriageHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Malformed request body")
		return
	}

	switch strings.ToLower(strings.TrimSpace(req.Mode)) {
	case "manual", "":
		result, err := h.service.AnalyzeManual(r.Context(), req.TargetID, strings.TrimSpace(req.SMILES))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	case "auto":
		report, err := h.service.AnalyzeAuto(r.Context(), req.TargetID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	default:
		writeBadRequest(w, "Unknown mode: expected manual or auto")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// POST /api/v1/upload
// ─────────────────────────────────────────────────────────────────────────────

// Upload scores every row of an uploaded CSV/TXT candidate file.
func (h *TriageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeBadRequest(w, "Upload too large or malformed multipart body")
		return
	}

	targetID := r.FormValue("target_id")
	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "Missing file part")
		return
	}
	defer file.Close()

	report, err := h.service.AnalyzeUpload(r.Context(), targetID, header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ─────────────────────────────────────────────────────────────────────────────
// GET /api/v1/progress
// ─────────────────────────────────────────────────────────────────────────────

// Progress reports the current scan progress snapshot for polling clients.
func (h *TriageHandler) Progress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Progress())
}

// ─────────────────────────────────────────────────────────────────────────────
// POST /api/v1/chat
// ─────────────────────────────────────────────────────────────────────────────

type chatRequest struct {
	Question    string                 `json:"question"`
	DrugContext map[string]interface{} `json:"drug_context"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat answers a follow-up question about a scored candidate.
func (h *TriageHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Malformed request body")
		return
	}

	answer := h.service.Chat(r.Context(), &narrative.ChatRequest{
		Question:    req.Question,
		DrugContext: req.DrugContext,
	})
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

// ─────────────────────────────────────────────────────────────────────────────
// POST /api/v1/optimize
// ─────────────────────────────────────────────────────────────────────────────

type optimizeRequest struct {
	Name     string `json:"name"`
	SMILES   string `json:"smiles"`
	TargetID string `json:"target_id"`
}

// Optimize proposes a single structural modification for a candidate.
func (h *TriageHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req optimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Malformed request body")
		return
	}

	opt := h.service.Optimize(r.Context(), &narrative.OptimizeRequest{
		Name:     req.Name,
		SMILES:   req.SMILES,
		TargetID: req.TargetID,
	})
	writeJSON(w, http.StatusOK, opt)
}

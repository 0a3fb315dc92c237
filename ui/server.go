package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goamb/app"
	"goamb/domain/ambtest"
	"goamb/domain/core"
	"goamb/domain/fuzzy"
	"goamb/internal"
)

// Server exposes the ambiguity test over a JSON API
type Server struct {
	router   *chi.Mux
	service  *app.AmbiguityService
	defaults ambtest.Params
	logger   *internal.Logger
}

// NewServer creates the HTTP surface around the ambiguity service.
// defaults fill in request fields the caller leaves unset.
func NewServer(service *app.AmbiguityService, defaults ambtest.Params) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		service:  service,
		defaults: defaults,
		logger:   internal.DefaultLogger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/tests", s.handleRunTest)
		r.Get("/tests", s.handleListResults)
		r.Get("/tests/{id}", s.handleGetResult)
		r.Get("/tests/{id}/report", s.handleReport)
	})
	s.router.Get("/healthz", s.handleHealth)

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// trapezoidDTO is the wire form of one fuzzy observation
type trapezoidDTO struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
}

// runTestRequest carries two samples plus optional parameter overrides.
// Paired selects the dependent-samples variant; the samples must then be
// matched and of equal size.
type runTestRequest struct {
	SampleX      []trapezoidDTO `json:"sample_x"`
	SampleY      []trapezoidDTO `json:"sample_y"`
	Alpha        *float64       `json:"alpha,omitempty"`
	Permutations *int           `json:"permutations,omitempty"`
	Seed         *int64         `json:"seed,omitempty"`
	Mode         string         `json:"mode,omitempty"`
	Paired       bool           `json:"paired,omitempty"`
}

type runTestResponse struct {
	Result   *ambtest.Result `json:"result"`
	SummaryX fuzzy.Summary   `json:"summary_x"`
	SummaryY fuzzy.Summary   `json:"summary_y"`
}

func (s *Server) handleRunTest(w http.ResponseWriter, r *http.Request) {
	var req runTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON payload: "+err.Error())
		return
	}

	x, err := toSample(req.SampleX)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "sample_x: "+err.Error())
		return
	}
	y, err := toSample(req.SampleY)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "sample_y: "+err.Error())
		return
	}

	params := s.defaults
	if req.Alpha != nil {
		params.Alpha = *req.Alpha
	}
	if req.Permutations != nil {
		params.Permutations = *req.Permutations
	}
	if req.Seed != nil {
		params.Seed = *req.Seed
	}
	if req.Mode != "" {
		params.Mode = ambtest.Mode(req.Mode)
	}

	run := s.service.RunTest
	if req.Paired {
		run = s.service.RunPairedTest
	}
	result, err := run(r.Context(), x, y, params)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	summaryX, summaryY, err := s.service.SummarizeSamples(x, y)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.logger.Info("test %s: T=%.6f p=%.6f mode=%s reject=%v",
		result.ID, result.ObservedStatistic, result.PValue, result.Mode, result.Reject)
	s.writeJSON(w, http.StatusOK, runTestResponse{Result: result, SummaryX: summaryX, SummaryY: summaryY})
}

func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseTestID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.GetResult(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListResults(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	results, err := s.service.ListResults(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if results == nil {
		results = []*ambtest.Result{}
	}
	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseTestID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.service.GetResult(r.Context(), id)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(RenderReportHTML(result))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toSample(dtos []trapezoidDTO) (fuzzy.Sample, error) {
	items := make([]fuzzy.Trapezoid, 0, len(dtos))
	for _, dto := range dtos {
		t, err := fuzzy.New(dto.A, dto.B, dto.C, dto.D)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return fuzzy.NewSample(items...)
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case core.IsInputError(err), core.IsArithmeticError(err):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case core.IsNotFoundError(err):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

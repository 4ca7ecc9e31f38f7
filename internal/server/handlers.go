package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/matzehuels/tileplan/pkg/buildinfo"
	"github.com/matzehuels/tileplan/pkg/clip"
	"github.com/matzehuels/tileplan/pkg/errors"
	"github.com/matzehuels/tileplan/pkg/geometry"
	"github.com/matzehuels/tileplan/pkg/observability"
	"github.com/matzehuels/tileplan/pkg/pattern"
	"github.com/matzehuels/tileplan/pkg/pipeline"
	"github.com/matzehuels/tileplan/pkg/project"
)

type healthResponse struct {
	Status   string                  `json:"status"`
	Version  string                  `json:"version"`
	Build    buildinfo.Info          `json:"build"`
	Counters *observability.Snapshot `json:"counters,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Version: buildinfo.Version, Build: buildinfo.Get()}
	if s.counters != nil {
		snap := s.counters.Snapshot()
		resp.Counters = &snap
	}
	writeJSON(w, http.StatusOK, resp)
}

// validateRequest is an outline as drawn: canvas nodes and edges.
type validateRequest struct {
	Nodes []project.Node `json:"nodes"`
	Edges []project.Edge `json:"edges"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !s.decode(w, r, &req) {
		return
	}
	nodes, edges := project.Project{Nodes: req.Nodes, Edges: req.Edges}.Shape()
	writeJSON(w, http.StatusOK, pipeline.ValidateLayoutShape(nodes, edges))
}

// patternRequest generates one pattern over a polygon in working pixels.
type patternRequest struct {
	Config  pattern.Config   `json:"config"`
	Polygon []geometry.Point `json:"polygon"`
	Clip    string           `json:"clip,omitempty"`
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	var req patternRequest
	if !s.decode(w, r, &req) {
		return
	}
	mode, err := clip.ParseMode(req.Clip)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	u, err := geometry.ParseUnit(string(req.Config.Tile.Unit))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	req.Config.Tile.Unit = u

	result, err := pipeline.GeneratePattern(req.Config, req.Polygon, mode)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handlePlan plans a project. ?refresh=true bypasses the cache.
func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var p project.Project
	if !s.decode(w, r, &p) {
		return
	}
	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	res, err := s.runner.Run(r.Context(), pipeline.Options{
		Project: p,
		Refresh: refresh,
		Logger:  s.logger.With("request_id", RequestIDFrom(r.Context())),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type compareResponse struct {
	Results []*pipeline.Result `json:"results"`
}

// handleCompare plans a project once per pattern. ?patterns=grid,brick
// restricts the patterns; the default is all of them.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var p project.Project
	if !s.decode(w, r, &p) {
		return
	}
	var patterns []string
	if q := r.URL.Query().Get("patterns"); q != "" {
		patterns = strings.Split(q, ",")
	}

	results, err := s.runner.Compare(r.Context(), p, patterns)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, compareResponse{Results: results})
}

// =============================================================================
// Encoding
// =============================================================================

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// decode reads a JSON body into v, writing a 400 response on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body"))
		return false
	}
	return true
}

// fail writes err with the status its code maps to.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "err", err)
	}
	writeError(w, status, string(code), errors.UserMessage(err))
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidTile,
		errors.ErrCodeInvalidUnit,
		errors.ErrCodeInvalidPolygon,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeUnsupportedPattern,
		errors.ErrCodeScaleUnresolved:
		return http.StatusBadRequest
	case errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

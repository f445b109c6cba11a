package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexiusacademia/gofault/internal/fault"
	"github.com/alexiusacademia/gofault/internal/version"
)

// FaultRequest is the body of a compute or compare request. Numeric fields
// may be JSON numbers or strings with a period or comma decimal separator.
type FaultRequest struct {
	Type      string         `json:"type"`
	VoltageKV fault.RawValue `json:"voltage_kv"`
	Z1        fault.RawValue `json:"z1"`
	Z2        fault.RawValue `json:"z2"`
	Z0        fault.RawValue `json:"z0"`
}

// CompareResponse lists every fault type that could be computed
type CompareResponse struct {
	Results   []*fault.Result `json:"results"`
	Skipped   []errorBody     `json:"skipped,omitempty"`
	Governing *fault.Result   `json:"governing"`
}

// SweepResponse is the result of a sweep request
type SweepResponse struct {
	Type   fault.Type      `json:"type"`
	Field  string          `json:"field"`
	Points []*fault.Result `json:"points"`
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Handler serves the fault calculation API
type Handler struct {
	logger        *slog.Logger
	maxSweepSteps int
}

// Compute handles POST /api/v1/faults
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req FaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request payload"})
		return
	}
	t, err := fault.ParseType(req.Type)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Field: "type"})
		return
	}

	res, err := fault.ComputeRaw(t, req.VoltageKV, req.Z1, req.Z2, req.Z0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Compare handles POST /api/v1/faults/compare
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req FaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request payload"})
		return
	}

	cmp, err := fault.Compare(string(req.VoltageKV), string(req.Z1), string(req.Z2), string(req.Z0))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := CompareResponse{Results: cmp.Results, Governing: cmp.Governing}
	for _, s := range cmp.Skipped {
		resp.Skipped = append(resp.Skipped, errorBody{Error: s.Error(), Field: s.Field.String()})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Sweep handles GET /api/v1/faults/sweep
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	t := fault.PhaseToGround
	if s := q.Get("type"); s != "" {
		var err error
		if t, err = fault.ParseType(s); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Field: "type"})
			return
		}
	}
	field, err := parseField(q.Get("field"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Field: "field"})
		return
	}

	steps := 20
	if s := q.Get("steps"); s != "" {
		if steps, err = strconv.Atoi(s); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "steps must be an integer", Field: "steps"})
			return
		}
	}
	if steps > h.maxSweepSteps {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Error: fmt.Sprintf("steps must be at most %d", h.maxSweepSteps), Field: "steps",
		})
		return
	}

	spec, err := fault.ParseSweep(t, field, q.Get("voltage_kv"), q.Get("z1"), q.Get("z2"), q.Get("z0"),
		q.Get("from"), q.Get("to"), steps)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	points, err := fault.Sweep(spec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp := SweepResponse{Type: t, Field: field.String()}
	for _, p := range points {
		resp.Points = append(resp.Points, p.Result)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": version.Version})
}

// writeError maps validation and range failures to 422 and anything else to 400
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *fault.ValidationError
	if errors.As(err, &verr) {
		h.logger.Debug("validation failed", "field", verr.Field.String(), "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: verr.Error(), Field: verr.Field.String()})
		return
	}
	if errors.Is(err, fault.ErrOutOfRange) {
		h.logger.Debug("result out of range", "error", err, "request_id", RequestID(r.Context()))
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
}

func parseField(s string) (fault.Field, error) {
	if s == "" {
		return fault.FieldZ0, nil
	}
	return fault.ParseField(s)
}

// writeJSON encodes v before committing the status so an unencodable value
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "{\"error\":%q}\n", "failed to encode response")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

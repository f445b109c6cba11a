package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gofault/internal/config"
	"github.com/alexiusacademia/gofault/internal/fault"
)

func newTestRouter(t *testing.T, mutate func(*config.ServerConfig)) http.Handler {
	t.Helper()
	cfg := config.Default().Server
	if mutate != nil {
		mutate(&cfg)
	}
	return NewRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCompute_OK(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := do(t, h, "POST", "/api/v1/faults",
		`{"type":"lg","voltage_kv":220,"z1":"0,05","z2":0.05,"z0":"0.15"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res fault.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, fault.PhaseToGround, res.Type)
	assert.InEpsilon(t, 1524204.710660612, res.CurrentA, 1e-9)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestCompute_ValidationError(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := do(t, h, "POST", "/api/v1/faults", `{"type":"ll","voltage_kv":"220","z1":"0.05"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "z2", body.Field)
	assert.Contains(t, body.Error, "Z2")
}

func TestCompute_BadRequests(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, "POST", "/api/v1/faults", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "POST", "/api/v1/faults", `{"type":"xyz","voltage_kv":1,"z1":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", "/api/v1/faults", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCompare(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := do(t, h, "POST", "/api/v1/faults/compare", `{"voltage_kv":220,"z1":0.05,"z2":0.05}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Results, 2)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "z0", resp.Skipped[0].Field)
	assert.Equal(t, fault.ThreePhase, resp.Governing.Type)
}

func TestSweep(t *testing.T) {
	h := newTestRouter(t, nil)
	rec := do(t, h, "GET", "/api/v1/faults/sweep?voltage_kv=220&z1=0.05&z2=0.05&from=0.05&to=0.5&steps=4", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp SweepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, fault.PhaseToGround, resp.Type)
	assert.Equal(t, "z0", resp.Field)
	require.Len(t, resp.Points, 4)
	assert.Equal(t, 0.5, resp.Points[3].Input.Z0)
}

func TestSweep_Errors(t *testing.T) {
	h := newTestRouter(t, func(c *config.ServerConfig) { c.MaxSweepSteps = 10 })

	rec := do(t, h, "GET", "/api/v1/faults/sweep?voltage_kv=220&z1=0.05&z2=0.05&from=0.05&to=0.5&steps=11", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", "/api/v1/faults/sweep?voltage_kv=0&z1=0.05&z2=0.05&from=0.05&to=0.5", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, "GET", "/api/v1/faults/sweep?type=lll&field=z0&voltage_kv=11&z1=1&from=1&to=2", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", "/api/v1/faults/sweep?field=zz", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRateLimit(t *testing.T) {
	h := newTestRouter(t, func(c *config.ServerConfig) {
		c.RatePerSecond = 0.001
		c.Burst = 2
	})
	body := `{"type":"lll","voltage_kv":11,"z1":1}`

	assert.Equal(t, http.StatusOK, do(t, h, "POST", "/api/v1/faults", body).Code)
	assert.Equal(t, http.StatusOK, do(t, h, "POST", "/api/v1/faults", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, "POST", "/api/v1/faults", body).Code)

	// Health checks are not limited
	assert.Equal(t, http.StatusOK, do(t, h, "GET", "/healthz", "").Code)
}

func TestRequestID_Propagated(t *testing.T) {
	h := newTestRouter(t, nil)
	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestRateLimit_ZeroDisables(t *testing.T) {
	h := newTestRouter(t, func(c *config.ServerConfig) {
		c.RatePerSecond = 0
		c.Burst = 1
	})
	body := `{"type":"lll","voltage_kv":11,"z1":1}`
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, do(t, h, "POST", "/api/v1/faults", body).Code)
	}
}

func TestCompute_OutOfRange(t *testing.T) {
	h := newTestRouter(t, nil)
	for _, body := range []string{
		`{"type":"lll","voltage_kv":1e306,"z1":1}`,
		`{"type":"lll","voltage_kv":220,"z1":"1e-320"}`,
		`{"type":"lg","voltage_kv":1e200,"z1":1,"z2":1,"z0":1}`,
	} {
		rec := do(t, h, "POST", "/api/v1/faults", body)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)

		var eb errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
		assert.Contains(t, eb.Error, "representable range")
	}

	rec := do(t, h, "POST", "/api/v1/faults/compare", `{"voltage_kv":"1e306","z1":"1","z2":"1","z0":"1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestWriteJSON_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]float64{"current_a": math.Inf(1)})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var eb errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &eb))
	assert.NotEmpty(t, eb.Error)
}

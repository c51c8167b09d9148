package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/furrow/internal/dto"
	"github.com/aretw0/furrow/pkg/config"
	"github.com/aretw0/furrow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoBody(t *testing.T, mutate func(*config.Scenario)) []byte {
	t.Helper()
	sc := config.Default()
	if mutate != nil {
		mutate(sc)
	}
	body, err := json.Marshal(sc)
	require.NoError(t, err)
	return body
}

func post(t *testing.T, h http.Handler, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := NewHandler()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestEvaluate(t *testing.T) {
	w := post(t, NewHandler(), "/v1/evaluate", demoBody(t, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.Evaluation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.10, resp.Heuristic, 1e-9)
	assert.Zero(t, resp.Cost)
	assert.False(t, resp.Goal)
	assert.Len(t, resp.Actions, 3)
	assert.Len(t, resp.ValidActions, 2)
	assert.InDelta(t, 0.05, resp.Deviations["N"], 1e-9)
}

func TestExpand(t *testing.T) {
	w := post(t, NewHandler(), "/v1/expand", demoBody(t, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.ExpandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Children, 2)
	for _, c := range resp.Children {
		assert.True(t, c.Goal)
		assert.Zero(t, c.Heuristic)
		assert.Positive(t, c.G)
	}
}

func TestPlan_RecordsMetrics(t *testing.T) {
	h := NewHandler()

	w := post(t, h, "/v1/plan", demoBody(t, nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.PlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Steps, 1)
	assert.Equal(t, 0.2, resp.Steps[0].Action.WaterAmount)
	assert.InDelta(t, 0.32, resp.Cost, 1e-9)

	m := httptest.NewRecorder()
	h.ServeHTTP(m, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), `furrow_searches_total{outcome="goal"} 1`)
}

func TestPlan_YAMLBody(t *testing.T) {
	data, err := config.Default().YAML()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/plan", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/yaml")
	w := httptest.NewRecorder()
	NewHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       []byte
		wantStatus int
		wantIssue  string
	}{
		{
			name:       "malformed json",
			path:       "/v1/evaluate",
			body:       []byte(`{"environment":`),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing keys",
			path:       "/v1/evaluate",
			body:       []byte(`{"environment": {}}`),
			wantStatus: http.StatusBadRequest,
			wantIssue:  "environment.soil_type",
		},
		{
			name: "invalid values",
			path: "/v1/expand",
			body: demoBody(t, func(sc *config.Scenario) {
				sc.Environment.IrrigationSystem = "pivot"
			}),
			wantStatus: http.StatusBadRequest,
			wantIssue:  "environment.irrigation_system",
		},
		{
			name: "no plan",
			path: "/v1/plan",
			body: demoBody(t, func(sc *config.Scenario) {
				sc.Environment.WaterAvailability = 0
			}),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, NewHandler(), tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
			if tt.wantIssue != "" {
				var fields []string
				for _, issue := range resp.Issues {
					fields = append(fields, issue.Field)
				}
				assert.Contains(t, fields, tt.wantIssue)
			}
		})
	}
}

func TestPlanStream(t *testing.T) {
	w := post(t, NewHandler(), "/v1/plan/stream", demoBody(t, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Equal(t, 1, strings.Count(body, "event: expand"))
	assert.Contains(t, body, "event: result")
	assert.NotContains(t, body, "event: error")
}

func TestPlan_QueryLimits(t *testing.T) {
	slow := demoBody(t, func(sc *config.Scenario) {
		sc.Actions = []domain.Action{{WaterAmount: 0.01}}
	})

	tests := []struct {
		name       string
		query      string
		body       []byte
		wantStatus int
	}{
		{"limits allow the demo plan", "?max_expansions=5&max_depth=1", demoBody(t, nil), http.StatusOK},
		{"expansion budget spent", "?max_expansions=2", slow, http.StatusUnprocessableEntity},
		{"not a number", "?max_expansions=many", demoBody(t, nil), http.StatusBadRequest},
		{"below one", "?max_depth=0", demoBody(t, nil), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"/v1/plan", "/v1/plan/stream"} {
				w := post(t, NewHandler(), path+tt.query, tt.body)
				if path == "/v1/plan/stream" && tt.wantStatus == http.StatusUnprocessableEntity {
					// Search failures arrive as an event once streaming has started.
					assert.Equal(t, http.StatusOK, w.Code)
					assert.Contains(t, w.Body.String(), "event: error")
					continue
				}
				assert.Equal(t, tt.wantStatus, w.Code, "%s: %s", path, w.Body.String())
			}
		})
	}
}

func TestOpenAPI_DocumentMatchesRoutes(t *testing.T) {
	swagger, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	h := NewHandler()
	for path, item := range swagger.Paths.Map() {
		for method := range item.Operations() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader("")))
			assert.NotEqual(t, http.StatusNotFound, w.Code, "%s %s", method, path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, w.Code, "%s %s", method, path)
		}
	}
}

func TestOpenAPI_ServedAndVersioned(t *testing.T) {
	h := NewHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/v1/plan/stream")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var info Info
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "furrow-http", info.App)
	assert.Equal(t, "0.3.0", info.ApiVersion)
}

package audits_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"finbooks-backend/internal/bootstrap"
	"finbooks-backend/internal/shared/config"
)

func buildApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		LocalStoreDir:   t.TempDir(),
		Env:             "dev",
		ObjectStoreType: "local",
	})
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuditLifecycleOverHTTP(t *testing.T) {
	app := buildApp(t)

	createBody := `{
		"title": "Q1 expense review",
		"items": [
			{"description": "Fuel receipt", "category": "Travel", "amount": "45.00", "status": "flagged"},
			{"description": "Office chair", "category": "Office", "amount": "320.00", "status": "cleared"}
		]
	}`
	created := doJSON(t, app.Router, http.MethodPost, "/api/v1/audits", createBody)
	if created.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", created.Code, created.Body.String())
	}
	var audit struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(created.Body).Decode(&audit); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if audit.ID == "" || audit.Status != "draft" {
		t.Fatalf("unexpected audit: %+v", audit)
	}

	run := doJSON(t, app.Router, http.MethodPost, "/api/v1/audits/"+audit.ID+"/run", "")
	if run.Code != http.StatusOK {
		t.Fatalf("run: expected 200, got %d: %s", run.Code, run.Body.String())
	}
	var ran struct {
		Success bool `json:"success"`
		Data    struct {
			Summary struct {
				OverallRisk   string `json:"overallRisk"`
				ControlStatus string `json:"controlStatus"`
			} `json:"summary"`
			Persisted bool `json:"persisted"`
		} `json:"data"`
	}
	if err := json.NewDecoder(run.Body).Decode(&ran); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ran.Success || ran.Data.Summary.OverallRisk == "" {
		t.Fatalf("unexpected run payload: %+v", ran)
	}
	if !ran.Data.Persisted {
		t.Fatalf("run payload should report the report as persisted")
	}

	got := doJSON(t, app.Router, http.MethodGet, "/api/v1/audits/"+audit.ID, "")
	if got.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", got.Code)
	}
	var detail struct {
		Audit struct {
			Status string `json:"status"`
		} `json:"audit"`
		Items []struct {
			Description string `json:"description"`
		} `json:"items"`
	}
	if err := json.NewDecoder(got.Body).Decode(&detail); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if detail.Audit.Status != "completed" || len(detail.Items) != 2 {
		t.Fatalf("unexpected detail: %+v", detail)
	}
}

func TestCreateAuditRequiresTitle(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/audits", `{"items": []}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestRunUnknownAuditReturns404(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/audits/nope/run", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

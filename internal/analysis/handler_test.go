package analysis_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
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

func doJSON(t *testing.T, router http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func uploadFile(t *testing.T, router http.Handler, name, content string) string {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fw, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("upload: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return created.DocumentID
}

func TestAnalyzeEndpointFullPipeline(t *testing.T) {
	app := buildApp(t)
	id := uploadFile(t, app.Router, "book.csv",
		"date,description,amount\n"+
			"2026-02-01,Parking downtown,-12.50\n"+
			"2026-02-02,Consulting invoice,4000.00\n")

	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/documents/"+id+"/analyze", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("analyze: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var analyzed struct {
		Success bool `json:"success"`
		Data    struct {
			RiskLevel    string `json:"riskLevel"`
			Transactions []struct {
				Type string `json:"type"`
			} `json:"transactions"`
			WriteOffs []struct {
				Category string `json:"category"`
			} `json:"writeOffs"`
			Findings         []string `json:"findings"`
			Recommendations  []string `json:"recommendations"`
			WriteOffsCreated int      `json:"writeOffsCreated"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&analyzed); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !analyzed.Success || analyzed.Data.RiskLevel != "low" || analyzed.Data.WriteOffsCreated != 1 {
		t.Fatalf("unexpected analysis payload: %+v", analyzed)
	}
	if analyzed.Data.Findings[0] != "Potential write-off detected: $12.5 - Parking downtown" {
		t.Fatalf("finding = %q", analyzed.Data.Findings[0])
	}
	if len(analyzed.Data.Transactions) != 2 || analyzed.Data.Transactions[0].Type != "expense" {
		t.Fatalf("unexpected transactions: %+v", analyzed.Data.Transactions)
	}
	if len(analyzed.Data.WriteOffs) != 1 || analyzed.Data.WriteOffs[0].Category != "Uncategorized" {
		t.Fatalf("unexpected write-offs payload: %+v", analyzed.Data.WriteOffs)
	}

	// Ledger views reflect the persisted records.
	listResp := doJSON(t, app.Router, http.MethodGet, "/api/v1/write-offs", "")
	if listResp.Code != http.StatusOK {
		t.Fatalf("write-offs: expected 200, got %d", listResp.Code)
	}
	var offs struct {
		WriteOffs []struct {
			Status   string `json:"status"`
			Category string `json:"category"`
		} `json:"writeOffs"`
	}
	if err := json.NewDecoder(listResp.Body).Decode(&offs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(offs.WriteOffs) != 1 || offs.WriteOffs[0].Status != "pending" {
		t.Fatalf("unexpected write-offs: %+v", offs.WriteOffs)
	}

	exportResp := doJSON(t, app.Router, http.MethodGet, "/api/v1/write-offs/export", "")
	if exportResp.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", exportResp.Code)
	}
	if !strings.HasPrefix(exportResp.Body.String(), "Date,Description,Amount,Tax Code\n") {
		t.Fatalf("export header mismatch: %q", exportResp.Body.String())
	}

	balResp := doJSON(t, app.Router, http.MethodGet, "/api/v1/balance-sheet", "")
	var bal struct {
		BalanceSheet []struct {
			Category string `json:"category"`
		} `json:"balanceSheet"`
	}
	if err := json.NewDecoder(balResp.Body).Decode(&bal); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(bal.BalanceSheet) != 1 || bal.BalanceSheet[0].Category != "asset" {
		t.Fatalf("unexpected balance sheet: %+v", bal.BalanceSheet)
	}
}

func TestAnalyzeEndpointConflictOnSecondTrigger(t *testing.T) {
	app := buildApp(t)
	id := uploadFile(t, app.Router, "book.csv", "amount,description\n-5,Toll fee\n")

	if resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/documents/"+id+"/analyze", ""); resp.Code != http.StatusOK {
		t.Fatalf("first analyze: expected 200, got %d", resp.Code)
	}
	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/documents/"+id+"/analyze", "")
	if resp.Code != http.StatusConflict {
		t.Fatalf("second analyze: expected 409, got %d", resp.Code)
	}
}

func TestAnalyzeEndpointUnknownDocument(t *testing.T) {
	app := buildApp(t)
	resp := doJSON(t, app.Router, http.MethodPost, "/api/v1/documents/nope/analyze", "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

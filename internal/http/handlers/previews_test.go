package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"paintpreview/internal/catalog"
	"paintpreview/internal/http/handlers"
	"paintpreview/internal/http/httpapi"
	"paintpreview/internal/orchestrator"
	"paintpreview/internal/prompt"
	"paintpreview/internal/store"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	orc := orchestrator.New(orchestrator.Options{
		Catalog: catalog.Default(),
		Prompts: prompt.NewStaticBuilder(),
		Backend: nil, // placeholder-only
		Store:   store.New(),
		Logger:  zerolog.Nop(),
	})
	app := handlers.NewApp(orc, zerolog.Nop())
	ts := httptest.NewServer(httpapi.NewRouter(app))
	t.Cleanup(ts.Close)
	return ts
}

type previewPayload struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
	Artifacts []struct {
		ProductCode string `json:"product_code"`
		ImageData   string `json:"image_data"`
		GeneratedBy string `json:"generated_by"`
	} `json:"artifacts"`
	Error string `json:"error"`
}

func postPreview(t *testing.T, ts *httptest.Server, body string) (*http.Response, previewPayload) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/v1/previews", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /v1/previews: %v", err)
	}
	defer resp.Body.Close()
	var payload previewPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, payload
}

func TestPreviewsGenerate(t *testing.T) {
	ts := newTestServer(t)

	resp, payload := postPreview(t, ts, `{"image":"http://x/house.jpg","product_codes":["ND-050","KP-200","NOPE"],"max_patterns":2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status code mismatch: %d", resp.StatusCode)
	}
	if payload.Status != "completed" {
		t.Fatalf("status mismatch: %s", payload.Status)
	}
	if len(payload.Artifacts) != 2 {
		t.Fatalf("artifact count mismatch: %d", len(payload.Artifacts))
	}
	if payload.Artifacts[0].ProductCode != "ND-050" || payload.Artifacts[1].ProductCode != "KP-200" {
		t.Fatalf("artifact order mismatch: %+v", payload.Artifacts)
	}
	for _, a := range payload.Artifacts {
		if a.GeneratedBy != "placeholder" {
			t.Fatalf("expected placeholder artifacts without a backend: %+v", a)
		}
	}
}

func TestPreviewsGenerateNoMatches(t *testing.T) {
	ts := newTestServer(t)

	resp, payload := postPreview(t, ts, `{"image":"http://x/house.jpg","product_codes":["NOPE"]}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status code mismatch: %d", resp.StatusCode)
	}
	if payload.Status != "failed" || payload.Error != "no matching paints" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Artifacts) != 0 {
		t.Fatalf("failed request must have no artifacts: %+v", payload.Artifacts)
	}
}

func TestPreviewsGenerateRejectsMissingImage(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/v1/previews", "application/json", strings.NewReader(`{"product_codes":["ND-050"]}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status code mismatch: %d", resp.StatusCode)
	}
}

func TestPreviewResultAndStatus(t *testing.T) {
	ts := newTestServer(t)

	_, submitted := postPreview(t, ts, `{"image":"http://x/house.jpg","product_codes":["ND-050"]}`)

	resp, err := http.Get(ts.URL + "/v1/previews/" + submitted.RequestID)
	if err != nil {
		t.Fatalf("GET result: %v", err)
	}
	var got previewPayload
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || got.RequestID != submitted.RequestID {
		t.Fatalf("unexpected result response: %d %+v", resp.StatusCode, got)
	}

	resp, err = http.Get(ts.URL + "/v1/previews/" + submitted.RequestID + "/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	var status map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	resp.Body.Close()
	if status["status"] != "completed" {
		t.Fatalf("status mismatch: %+v", status)
	}
}

func TestPreviewResultNotFound(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/v1/previews/unknown-id")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status code mismatch: %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/v1/previews/unknown-id/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	var status map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound || status["status"] != "not_found" {
		t.Fatalf("unexpected status response: %d %+v", resp.StatusCode, status)
	}
}

func TestStatsSummary(t *testing.T) {
	ts := newTestServer(t)

	postPreview(t, ts, `{"image":"http://x/house.jpg","product_codes":["ND-050"]}`)
	postPreview(t, ts, `{"image":"http://x/house.jpg","product_codes":["NOPE"]}`)

	resp, err := http.Get(ts.URL + "/v1/stats")
	if err != nil {
		t.Fatalf("GET stats: %v", err)
	}
	var stats struct {
		Total      int `json:"total"`
		Completed  int `json:"completed"`
		Failed     int `json:"failed"`
		Processing int `json:"processing"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	resp.Body.Close()
	if stats.Total != 2 || stats.Completed != 1 || stats.Failed != 1 || stats.Processing != 0 {
		t.Fatalf("stats mismatch: %+v", stats)
	}
}

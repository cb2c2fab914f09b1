package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	consentAdapter "mandate-gateway/internal/adapter/consent"
	httpHandler "mandate-gateway/internal/adapter/http/handler"
	"mandate-gateway/internal/adapter/settlement"
	"mandate-gateway/internal/adapter/storage/memory"
	"mandate-gateway/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on the real in-memory
// stores. This exercises the HTTP layer, middleware, handlers and
// services end-to-end the way the demo server runs them.

type testApp struct {
	server *httptest.Server
	rail   *settlement.Client
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	log := zerolog.Nop()
	signer := service.NewHMACSigner("demo_secret_key")
	repo := memory.NewMandateRepo()
	ledger := memory.NewAuditLedger(signer, 0)
	rail := settlement.NewClient(25_000, log)

	mandateSvc := service.NewMandateService(repo, ledger, consentAdapter.NewCBUAERegistry(log), nil, log)
	riskSvc := service.NewRiskService(1_000, 10_000, "AED")
	workflowSvc := service.NewWorkflowService(mandateSvc, riskSvc, rail, 5*time.Second, log)
	exportSvc := service.NewExportService(repo, ledger, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		MandateSvc:  mandateSvc,
		WorkflowSvc: workflowSvc,
		ExportSvc:   exportSvc,
		Ledger:      ledger,
		Logger:      log,
	})

	return &testApp{server: httptest.NewServer(router), rail: rail}
}

func (a *testApp) close() {
	a.server.Close()
}

func (a *testApp) post(t *testing.T, path string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(http.MethodPost, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func createBody(kind string, amount int64) map[string]any {
	return map[string]any{
		"kind":     kind,
		"amount":   amount,
		"currency": "AED",
		"payer":    "user-1",
		"payee":    "merchant-9",
		"agent_id": "agent-x",
		"purpose":  "weekly groceries",
	}
}

func workflowBody(amount int64) map[string]any {
	b := createBody("", amount)
	delete(b, "kind")
	return b
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.get(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestIntegration_FullMandateLifecycle(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Create an Intent mandate.
	resp, body := app.post(t, "/api/v1/mandates", createBody("INTENT", 500))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	intent := body["data"].(map[string]interface{})
	intentID := intent["id"].(string)
	assert.Equal(t, "DRAFT", intent["state"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	// Register consent.
	resp, body = app.post(t, "/api/v1/mandates/"+intentID+"/consent", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "CONSENT_REGISTERED", body["data"].(map[string]interface{})["state"])

	// Convert to a Payment mandate.
	resp, body = app.post(t, "/api/v1/mandates/"+intentID+"/convert", map[string]any{"target_kind": "PAYMENT"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	payment := body["data"].(map[string]interface{})
	paymentID := payment["id"].(string)
	assert.Equal(t, "CONVERTED", payment["state"])
	assert.Equal(t, intentID, payment["derived_from"])

	// Assess risk (empty body, no payer history).
	resp, body = app.post(t, "/api/v1/mandates/"+paymentID+"/assess", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assessed := body["data"].(map[string]interface{})
	assert.Equal(t, "RISK_ASSESSED", assessed["state"])
	assert.Equal(t, "LOW", assessed["risk"].(map[string]interface{})["tier"])

	// Settle on the instant rail.
	resp, body = app.post(t, "/api/v1/mandates/"+paymentID+"/settle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SETTLED", body["data"].(map[string]interface{})["state"])

	// The payment's merged history: five verified events ending SETTLED.
	resp, body = app.get(t, "/api/v1/mandates/"+paymentID+"/history")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := body["data"].(map[string]interface{})
	items := history["items"].([]interface{})
	require.Len(t, items, 5)
	kinds := make([]string, 0, 5)
	for _, it := range items {
		e := it.(map[string]interface{})
		kinds = append(kinds, e["kind"].(string))
		assert.Equal(t, true, e["verified"])
		assert.NotEmpty(t, e["signature"])
	}
	assert.Equal(t, []string{"CREATED", "CONSENT_REGISTERED", "CONVERTED", "RISK_ASSESSED", "SETTLED"}, kinds)
}

func TestIntegration_HighRiskSettlementBlocked(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.post(t, "/api/v1/mandates", createBody("INTENT", 50_000))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	intentID := body["data"].(map[string]interface{})["id"].(string)

	_, _ = app.post(t, "/api/v1/mandates/"+intentID+"/consent", nil)
	_, body = app.post(t, "/api/v1/mandates/"+intentID+"/convert", map[string]any{"target_kind": "PAYMENT"})
	paymentID := body["data"].(map[string]interface{})["id"].(string)

	resp, body = app.post(t, "/api/v1/mandates/"+paymentID+"/assess", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "HIGH", body["data"].(map[string]interface{})["risk"].(map[string]interface{})["tier"])

	// Settlement is refused; the mandate stays revocable.
	resp, body = app.post(t, "/api/v1/mandates/"+paymentID+"/settle", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "MND_003", body["error_code"])

	resp, body = app.post(t, "/api/v1/mandates/"+paymentID+"/revoke", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "REVOKED", body["data"].(map[string]interface{})["state"])
}

func TestIntegration_InvalidTransitionConflict(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.post(t, "/api/v1/mandates", createBody("INTENT", 500))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	intentID := body["data"].(map[string]interface{})["id"].(string)

	// Converting before consent is a lifecycle conflict.
	resp, body = app.post(t, "/api/v1/mandates/"+intentID+"/convert", map[string]any{"target_kind": "PAYMENT"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "MND_001", body["error_code"])
}

func TestIntegration_WorkflowEndpoint(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.post(t, "/api/v1/workflow", workflowBody(500))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	payment := data["payment"].(map[string]interface{})
	assert.Equal(t, "SETTLED", payment["state"])
	settlementData := data["settlement"].(map[string]interface{})
	assert.Equal(t, "AANI", settlementData["rail"])
	assert.Equal(t, "SUCCESS", settlementData["status"])
}

func TestIntegration_WorkflowSettlementFailure(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	app.rail.FailNext()
	resp, body := app.post(t, "/api/v1/workflow", workflowBody(500))
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "MND_005", body["error_code"])

	// The payment mandate survives in RISK_ASSESSED and can be settled
	// directly afterwards.
	_, body = app.get(t, "/api/v1/mandates")
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	var paymentID string
	for _, it := range items {
		m := it.(map[string]interface{})
		if m["kind"] == "PAYMENT" {
			paymentID = m["id"].(string)
			assert.Equal(t, "RISK_ASSESSED", m["state"])
		}
	}
	require.NotEmpty(t, paymentID)

	resp, body = app.post(t, "/api/v1/mandates/"+paymentID+"/settle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SETTLED", body["data"].(map[string]interface{})["state"])
}

func TestIntegration_AuditTrailEndpoint(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.post(t, "/api/v1/mandates", createBody("INTENT", 500))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	intentID := body["data"].(map[string]interface{})["id"].(string)
	_, _ = app.post(t, "/api/v1/mandates", createBody("INTENT", 600))

	resp, body = app.get(t, "/api/v1/audit")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["total"])

	resp, body = app.get(t, "/api/v1/audit?mandate_id="+intentID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["data"].(map[string]interface{})["total"])
}

func TestIntegration_SnapshotRoundTrip(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	// Seed a settled payment via the workflow, then export.
	resp, _ := app.post(t, "/api/v1/workflow", workflowBody(500))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := app.get(t, "/api/v1/snapshot")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	snap := body["data"].(map[string]interface{})
	require.Len(t, snap["mandates"], 2)
	require.Len(t, snap["events"], 5)

	// Import the snapshot into a fresh gateway sharing the secret.
	other := newTestApp(t)
	defer other.close()

	resp, body = other.post(t, "/api/v1/snapshot", snap)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["mandates"])
	assert.Equal(t, float64(5), body["data"].(map[string]interface{})["events"])

	// The restored gateway serves identical state.
	_, body = other.get(t, "/api/v1/mandates")
	assert.Equal(t, float64(2), body["data"].(map[string]interface{})["total"])
	_, body = other.get(t, "/api/v1/audit")
	items := body["data"].(map[string]interface{})["items"].([]interface{})
	require.Len(t, items, 5)
	for _, it := range items {
		assert.Equal(t, true, it.(map[string]interface{})["verified"])
	}
}

func TestIntegration_SnapshotImportRejectsTampering(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.post(t, "/api/v1/mandates", createBody("INTENT", 500))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, body := app.get(t, "/api/v1/snapshot")
	snap := body["data"].(map[string]interface{})
	events := snap["events"].([]interface{})
	events[0].(map[string]interface{})["agent_id"] = "tampered-agent"

	resp, body = app.post(t, "/api/v1/snapshot", snap)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "LDG_002", body["error_code"])
}

func TestIntegration_NotFound(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.get(t, "/api/v1/mandates/M-DOESNOTEXI")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "MND_004", body["error_code"])
}

func TestIntegration_ValidationError(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.post(t, "/api/v1/mandates", map[string]any{
		"kind": "INTENT", "amount": -5, "currency": "AED",
		"payer": "user-1", "payee": "merchant-9", "agent_id": "agent-x",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])
}

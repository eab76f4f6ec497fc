package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"offerOptimizer/business/optimizer"

	"github.com/labstack/echo/v4"
)

const validBody = `{
	"customer_id": "CUST001",
	"copcar": 200.0,
	"models": [
		{
			"model_name": "churn_predictor",
			"model_probability": 0.8,
			"model_category": "retention",
			"available_offers": [
				{"offer_name": "Retention Offer 1", "price": 150.0, "volume": 200.0, "conversion_rate": 0.15}
			]
		}
	]
}`

func newHandler(cfg optimizer.Config) *OptimizerHandler {
	return NewOptimizerHandler(optimizer.NewService(cfg), 5*time.Second)
}

func doOptimize(t *testing.T, h *OptimizerHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Optimize(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestOptimizeOK(t *testing.T) {
	rec := doOptimize(t, newHandler(optimizer.DefaultConfig()), validBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	body := rec.Body.String()
	for _, field := range []string{
		`"customer_id":"CUST001"`,
		`"offer_name":"Retention Offer 1"`,
		`"actual_offer_price":150`,
		`"expected_profit":50`,
	} {
		if !strings.Contains(body, field) {
			t.Errorf("response missing %s: %s", field, body)
		}
	}
}

func TestOptimizeBadJSON(t *testing.T) {
	rec := doOptimize(t, newHandler(optimizer.DefaultConfig()), `{"customer_id": `)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeUnknownCategory(t *testing.T) {
	body := strings.Replace(validBody, `"retention"`, `"acquisition"`, 1)
	rec := doOptimize(t, newHandler(optimizer.DefaultConfig()), body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizePriceAboveCopcar(t *testing.T) {
	// passes wire-level field validation, rejected by the engine
	body := strings.Replace(validBody, `"price": 150.0`, `"price": 250.0`, 1)
	rec := doOptimize(t, newHandler(optimizer.DefaultConfig()), body)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestOptimizeNoFeasibleCandidate(t *testing.T) {
	cfg := optimizer.DefaultConfig()
	cfg.RetentionMinFactor = 2.0
	cfg.GrowthMinFactor = 2.0

	rec := doOptimize(t, newHandler(cfg), validBody)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestOptimizeDebugOK(t *testing.T) {
	h := newHandler(optimizer.DefaultConfig())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize/debug", strings.NewReader(validBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.OptimizeDebug(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"selected":true`) {
		t.Errorf("debug response missing selected candidate: %s", rec.Body.String())
	}
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := HealthCheck(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

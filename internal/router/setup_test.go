package router

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetly/internal/i18n"
	"budgetly/internal/logger"
	"budgetly/internal/services"
	"budgetly/internal/storage"
	"budgetly/internal/storage/memory"
	"budgetly/internal/validator"
)

const testAdminKey = "admin-secret"

// testApp holds the full application stack for flow tests.
type testApp struct {
	Store  *memory.Store
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by a fresh in-memory gateway.
func setupApp(t *testing.T) *testApp {
	t.Helper()
	store := memory.New()
	return &testApp{Store: store, Router: newRouter(t, store)}
}

// newRouter builds the router over store, restoring any state it holds.
func newRouter(t *testing.T, store storage.Gateway) *gin.Engine {
	t.Helper()
	core, err := services.NewCore(store, nil)
	if err != nil {
		t.Fatalf("failed to build core: %v", err)
	}
	catalog, err := i18n.Load(i18n.DefaultLanguage)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return New(core, catalog, Options{AdminAPIKey: testAdminKey})
}

// request makes an HTTP request to the test router and returns the recorder.
func (a *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	return a.requestWithHeaders(method, path, body, nil)
}

func (a *testApp) requestWithHeaders(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	return rec
}

// setBudget sets the active period and fails the test on error.
func (a *testApp) setBudget(t *testing.T, amount, start, end string) {
	t.Helper()
	body := `{"amount":"` + amount + `","period":"monthly","start_date":"` + start + `","end_date":"` + end + `"}`
	rec := a.request("PUT", "/api/v1/budget", body)
	if rec.Code != 200 {
		t.Fatalf("set budget failed: %d %s", rec.Code, rec.Body.String())
	}
}

// addExpense appends an expense dated today and returns the response body.
func (a *testApp) addExpense(t *testing.T, amount, category, today string) map[string]interface{} {
	t.Helper()
	body := `{"type":"expense","amount":"` + amount + `","category":"` + category + `","description":"` + category + `"}`
	rec := a.request("POST", "/api/v1/transactions?today="+today, body)
	if rec.Code != 201 {
		t.Fatalf("add expense failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// kinds returns the notification kinds in a response, in order.
func kinds(t *testing.T, result map[string]interface{}) []string {
	t.Helper()
	raw, ok := result["notifications"].([]interface{})
	if !ok {
		t.Fatalf("expected notifications array, got %v", result["notifications"])
	}
	out := make([]string, 0, len(raw))
	for _, n := range raw {
		out = append(out, n.(map[string]interface{})["kind"].(string))
	}
	return out
}

package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"order_core/internal/adapter/http/middleware"
	"order_core/internal/adapter/persistence"
	"order_core/internal/adapter/persistence/memory"
	"order_core/internal/domain/entities"
	"order_core/internal/infrastructure/config"
	"order_core/internal/infrastructure/messaging"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

type testServer struct {
	router *gin.Engine
	auth   *middleware.Authenticator
	stores persistence.Stores
	mem    *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mem := memory.NewStore()
	stores := persistence.NewMemoryStores(mem)
	settings := SettingsFrom(config.Config{
		OrderNumberPrefix:      "ORD",
		SampleRequestPrefix:    "SMP",
		TxTimeout:              time.Second,
		NotifyTimeout:          time.Second,
		ConvertMaxAttempts:     3,
		ConvertRetryBackoff:    time.Millisecond,
		SampleMessageMinLength: 10,
	})
	auth := middleware.NewAuthenticator(testSecret)
	router := NewRouter(NewHandlers(stores, messaging.DisabledNotifier{}, settings, logger), auth, logrus.NewEntry(logger))
	return &testServer{router: router, auth: auth, stores: stores, mem: mem}
}

func (s *testServer) token(t *testing.T, caller entities.Caller) string {
	t.Helper()
	tok, err := s.auth.IssueToken(caller, time.Hour)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_ConversionFlow(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	member := entities.Caller{ID: "cust-1", Role: entities.RoleMember}
	admin := entities.Caller{ID: "admin-1", Role: entities.RoleAdmin}

	s.mem.SeedProduct(entities.Product{ID: "p-1", Name: "Pouch", StockQuantity: 10, Version: 1})
	s.mem.SeedQuotation(entities.Quotation{
		ID: "q-1", CustomerID: member.ID, Status: entities.QuotationStatusApproved, Version: 1,
		Items: []entities.QuotationItem{{ProductID: "p-1", ProductName: "Pouch", Quantity: 4, UnitPrice: decimal.RequireFromString("2.50")}},
	})

	memberToken, adminToken := s.token(t, member), s.token(t, admin)

	w := s.do(http.MethodPost, "/v1/quotations/q-1/convert", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/v1/quotations/q-1/convert", memberToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["eligible"])

	w = s.do(http.MethodPost, "/v1/quotations/q-1/convert", memberToken, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	orderID, _ := created["orderId"].(string)
	require.NotEmpty(t, orderID)
	assert.Regexp(t, `^ORD-\d{4}-000001$`, created["orderNumber"])

	w = s.do(http.MethodPost, "/v1/quotations/q-1/convert", memberToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, orderID, decodeBody(t, w)["orderId"])

	p, err := s.stores.Products.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), p.StockQuantity)

	w = s.do(http.MethodGet, "/v1/orders/"+orderID, memberToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	order := decodeBody(t, w)
	assert.Equal(t, "10.00", order["totalAmount"])
	assert.Equal(t, "QUOTATION_RECEIVED", order["status"])

	w = s.do(http.MethodPatch, "/v1/orders/"+orderID+"/status", memberToken, `{"status":"DATA_RECEIVED"}`)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPatch, "/v1/orders/"+orderID+"/status", adminToken, `{"status":"data_received","note":"files in"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "DATA_RECEIVED", decodeBody(t, w)["status"])

	w = s.do(http.MethodGet, "/v1/admin/consistency", memberToken, "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/v1/admin/consistency?check=all", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["isValid"])
}

func TestRouter_InsufficientStock(t *testing.T) {
	s := newTestServer(t)
	member := entities.Caller{ID: "cust-1", Role: entities.RoleMember}

	s.mem.SeedProduct(entities.Product{ID: "p-1", Name: "Pouch", StockQuantity: 1, Version: 1})
	s.mem.SeedQuotation(entities.Quotation{
		ID: "q-1", CustomerID: member.ID, Status: entities.QuotationStatusApproved, Version: 1,
		Items: []entities.QuotationItem{{ProductID: "p-1", ProductName: "Pouch", Quantity: 3, UnitPrice: decimal.NewFromInt(1)}},
	})

	w := s.do(http.MethodPost, "/v1/quotations/q-1/convert", s.token(t, member), "")
	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	require.Len(t, body["insufficientStock"], 1)
}

func TestRouter_SampleRequestAsGuest(t *testing.T) {
	s := newTestServer(t)

	payload := `{
		"customerInfo": {"contactPerson": "Kim", "email": "kim@acme.example", "phone": "555"},
		"deliveryType": "normal",
		"deliveryDestinations": [{"contactPerson": "Dock", "phone": "556", "address": "1 Harbor Rd"}],
		"sampleItems": [{"productName": "Pouch", "category": "pouch", "quantity": 2, "specifications": {"finish": "matte"}}],
		"message": "Two printed samples please",
		"privacyConsent": true
	}`
	w := s.do(http.MethodPost, "/v1/samples/requests", "", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Regexp(t, `^SMP-\d{4}-0001$`, body["requestId"])
	assert.Equal(t, false, body["emailSent"])

	number := body["requestId"].(string)
	req, err := s.stores.Samples.GetByRequestNumber(context.Background(), number)
	require.NoError(t, err)
	require.Len(t, req.Items, 1)
	assert.Equal(t, "matte", req.Items[0].Specifications["finish"])

	w = s.do(http.MethodGet, "/v1/samples/requests/"+number, "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/v1/samples/requests/"+number, s.token(t, entities.Caller{ID: "cust-1", Role: entities.RoleMember}), "")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodGet, "/v1/samples/requests/"+number, s.token(t, entities.Caller{ID: "admin-1", Role: entities.RoleAdmin}), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	details := decodeBody(t, w)
	assert.Equal(t, number, details["requestId"])
	assert.Equal(t, "received", details["status"])

	w = s.do(http.MethodPost, "/v1/samples/requests", "not-a-token", payload)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/v1/ping", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())

	w = s.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_core_http_requests_total")
}

func TestSettingsFrom(t *testing.T) {
	settings := SettingsFrom(config.Config{
		OrderNumberPrefix:      "PO",
		SampleRequestPrefix:    "SR",
		TxTimeout:              2 * time.Second,
		NotifyTimeout:          time.Second,
		ConvertMaxAttempts:     5,
		ConvertRetryBackoff:    10 * time.Millisecond,
		SampleMessageMinLength: 20,
	})
	assert.Equal(t, "PO", settings.OrderNumberPrefix)
	assert.Equal(t, "SR", settings.RequestNumberPrefix)
	assert.Equal(t, 5, settings.Retry.MaxAttempts)
	assert.Equal(t, 10*time.Millisecond, settings.Retry.InitialBackoff)
	assert.Equal(t, 2.0, settings.Retry.BackoffCoefficient)
	assert.Equal(t, 20, settings.MinMessageLength)
	assert.Equal(t, 40, settings.MaxQuotationLines)
}

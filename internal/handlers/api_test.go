package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"optica_backend/internal/repositories"
	"optica_backend/internal/router"
)

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	router.Setup(engine, repositories.NewMemoryStore())
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestPatientLifecycle(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(t, engine, http.MethodPost, "/api/patients", gin.H{
		"name":  "Ana Torres",
		"email": "ana@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID     int64  `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	decode(t, rec, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, "activo", created.Status)

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/patients/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/patients/%d", created.ID), gin.H{
		"phone": "555-1234",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated struct {
		Name  string  `json:"name"`
		Phone *string `json:"phone"`
	}
	decode(t, rec, &updated)
	require.Equal(t, "Ana Torres", updated.Name)
	require.NotNil(t, updated.Phone)
	require.Equal(t, "555-1234", *updated.Phone)

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/patients/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/patients/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDuplicateProductCodeConflict(t *testing.T) {
	engine := newTestServer()

	payload := gin.H{"code": "LEN-001", "name": "Lente", "price": 99.9}
	rec := doJSON(t, engine, http.MethodPost, "/api/products", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/products", payload)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []json.RawMessage
	decode(t, rec, &products)
	require.Len(t, products, 1)
}

func TestCreateProductValidation(t *testing.T) {
	engine := newTestServer()

	// Missing required fields fails binding.
	rec := doJSON(t, engine, http.MethodPost, "/api/products", gin.H{"name": "sin codigo"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// Bad enum value fails service validation.
	rec = doJSON(t, engine, http.MethodPost, "/api/products", gin.H{
		"code": "X-1", "name": "x", "price": 1.0, "status": "desconocido",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInvalidIDFormat(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(t, engine, http.MethodGet, "/api/products/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/appointments/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSalesOrderItemsRoutes(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(t, engine, http.MethodPost, "/api/sales-orders", gin.H{
		"orderNumber":  "SO-100",
		"customerName": "Cliente",
		"date":         "2026-08-31",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var order struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	decode(t, rec, &order)
	require.Equal(t, "nuevo", order.Status)

	rec = doJSON(t, engine, http.MethodPost, "/api/sales-order-items", gin.H{
		"salesOrderId": order.ID,
		"productId":    1,
		"productName":  "Armazon",
		"quantity":     2,
		"unitPrice":    50.0,
		"totalPrice":   100.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var item struct {
		ID int64 `json:"id"`
	}
	decode(t, rec, &item)

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/sales-orders/%d/items", order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []struct {
		ProductName string `json:"productName"`
	}
	decode(t, rec, &items)
	require.Len(t, items, 1)
	require.Equal(t, "Armazon", items[0].ProductName)

	rec = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/sales-order-items/%d", item.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/sales-orders/%d/items", order.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items = nil
	decode(t, rec, &items)
	require.Empty(t, items)
}

func TestDashboardCountsTodayAppointments(t *testing.T) {
	engine := newTestServer()

	today := time.Now().Format("2006-01-02")
	rec := doJSON(t, engine, http.MethodPost, "/api/appointments", gin.H{
		"patientName": "Ana",
		"date":        today,
		"time":        "10:30",
		"type":        "consulta",
		"doctorName":  "Dra. Perez",
		"status":      "confirmada",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/sales-orders", gin.H{
		"orderNumber":  "SO-1",
		"customerName": "Cliente",
		"date":         today,
		"total":        150.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary struct {
		TotalSales         float64 `json:"totalSales"`
		PendingOrders      int     `json:"pendingOrders"`
		ActiveConsignments int     `json:"activeConsignments"`
		TodayAppointments  int     `json:"todayAppointments"`
	}
	decode(t, rec, &summary)
	require.InDelta(t, 150.0, summary.TotalSales, 0.0001)
	require.Equal(t, 1, summary.PendingOrders)
	require.Equal(t, 0, summary.ActiveConsignments)
	require.Equal(t, 1, summary.TodayAppointments)
}

func TestLoginAndProfile(t *testing.T) {
	engine := newTestServer()

	rec := doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	decode(t, rec, &login)
	require.NotEmpty(t, login.Token)
	require.Equal(t, "admin", login.User.Username)
	require.NotContains(t, rec.Body.String(), "passwordHash")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	// No token, no profile.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	recorder = httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

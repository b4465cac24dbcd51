package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krikodium/hermanascaradonti/internal/dto"
)

func postJSONContext(t *testing.T, body map[string]any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	b, err := json.Marshal(body)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(b))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func assertFieldRejected(t *testing.T, w *httptest.ResponseRecorder, field string) {
	t.Helper()
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, field)
}

// Monetary amounts are non-negative by contract; a negative value must be
// stopped at the binding layer, never reach a service.

func TestBindRejectsNegativeGeneralCashExpense(t *testing.T) {
	c, w := postJSONContext(t, map[string]any{
		"date":        "2026-05-01",
		"description": "Nota de crédito mal cargada",
		"application": "gastos_generales",
		"provider":    "Ferretería Sur",
		"expense_ars": "-500",
	})

	ok := bindAndValidate(c, &dto.CreateGeneralCashRequest{})
	assert.False(t, ok)
	assertFieldRejected(t, w, "ExpenseARS")
}

func TestBindRejectsNegativeLedgerEntryIncome(t *testing.T) {
	c, w := postJSONContext(t, map[string]any{
		"payment_method": "efectivo",
		"date":           "2026-05-02",
		"detail":         "Cobro duplicado",
		"income_ars":     "-500",
	})

	ok := bindAndValidate(c, &dto.LedgerEntryRequest{})
	assert.False(t, ok)
	assertFieldRejected(t, w, "IncomeARS")
}

func TestBindRejectsNegativeStudioMovementExpense(t *testing.T) {
	c, w := postJSONContext(t, map[string]any{
		"date":         "2026-05-03",
		"project_name": "Alvear",
		"description":  "Ajuste manual",
		"expense_ars":  "-1200",
	})

	ok := bindAndValidate(c, &dto.CreateStudioMovementRequest{})
	assert.False(t, ok)
	assertFieldRejected(t, w, "ExpenseARS")
}

func TestBindRejectsNegativeShopSaleAmounts(t *testing.T) {
	c, w := postJSONContext(t, map[string]any{
		"date":                 "2026-05-04",
		"provider":             "Tienda HC",
		"client":               "Lucía",
		"internal_coordinator": "Caro",
		"quantity":             1,
		"item_description":     "Vajilla",
		"payment_method":       "efectivo",
		"sold_amount_ars":      "-5000",
		"cost_ars":             "1000",
	})

	ok := bindAndValidate(c, &dto.CreateShopCashRequest{})
	assert.False(t, ok)
	assertFieldRejected(t, w, "SoldAmountARS")
}

func TestBindAcceptsZeroAmounts(t *testing.T) {
	c, _ := postJSONContext(t, map[string]any{
		"date":        "2026-05-05",
		"description": "Movimiento sin monto ARS",
		"application": "otros",
		"provider":    "Banco Galicia",
		"income_ars":  "0",
		"income_usd":  "150",
	})

	ok := bindAndValidate(c, &dto.CreateGeneralCashRequest{})
	assert.True(t, ok)
}

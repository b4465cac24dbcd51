//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/krikodium/hermanascaradonti/internal/config"
	"github.com/krikodium/hermanascaradonti/internal/infra"
	"github.com/krikodium/hermanascaradonti/internal/model"
	"github.com/krikodium/hermanascaradonti/internal/router"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // super-admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("hcadmin_test"),
		tcPostgres.WithUsername("hcadmin"),
		tcPostgres.WithPassword("hcadmin"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                 8000,
		Env:                  "test",
		JWTSecret:            "test-secret-key",
		JWTExpirationHours:   8,
		DatabaseURL:          pgURL,
		RedisURL:             rdURL,
		WorkerPoolSize:       1,
		ApprovalThresholdARS: 50000,
		ApprovalThresholdUSD: 500,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// Seed a super-admin
	hash, err := bcrypt.GenerateFromPassword([]byte("hermanas2026"), 12)
	require.NoError(t, err)
	admin := model.Usuario{
		Username:     "mateo",
		PasswordHash: string(hash),
		Roles:        model.Roles{"super-admin"},
		Activo:       true,
	}
	require.NoError(t, db.WithContext(ctx).Create(&admin).Error)

	breaker := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	r := router.New(cfg, db, rdb, breaker)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"username": "mateo", "password": "hermanas2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{server: srv, token: loginBody.AccessToken, engine: r}
}

func createProject(t *testing.T, env *testEnv, name string) {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/projects",
		jsonBody(t, map[string]any{"name": name, "project_type": "deco"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_ApprovalFlow(t *testing.T) {
	env := setupTestEnv(t)

	// Large expense enters the approval workflow
	createResp := do(t, env.server, "POST", "/api/general-cash",
		jsonBody(t, map[string]any{
			"date":        "2026-03-10",
			"description": "Honorarios contador",
			"application": "honorarios",
			"provider":    "Estudio Roca",
			"expense_ars": "60000",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var entry struct {
		ID               string `json:"id"`
		RequiresApproval bool   `json:"requires_approval"`
		ApprovalStatus   string `json:"approval_status"`
		PaymentOrder     *struct {
			Status    string           `json:"status"`
			AmountARS *decimal.Decimal `json:"amount_ars"`
		} `json:"payment_order"`
	}
	decodeJSON(t, createResp, &entry)
	assert.True(t, entry.RequiresApproval)
	assert.Equal(t, "pending", entry.ApprovalStatus)
	require.NotNil(t, entry.PaymentOrder)
	assert.True(t, entry.PaymentOrder.AmountARS.Equal(decimal.NewFromInt(60000)))

	// Fede approves first
	fedeResp := do(t, env.server, "POST", "/api/general-cash/"+entry.ID+"/approve?approval_type=fede", nil, env.token)
	require.Equal(t, http.StatusOK, fedeResp.StatusCode)
	var afterFede struct {
		ApprovalStatus string `json:"approval_status"`
	}
	decodeJSON(t, fedeResp, &afterFede)
	assert.Equal(t, "approved_by_fede", afterFede.ApprovalStatus)

	// Then the sisters
	sistersResp := do(t, env.server, "POST", "/api/general-cash/"+entry.ID+"/approve?approval_type=sisters", nil, env.token)
	require.Equal(t, http.StatusOK, sistersResp.StatusCode)
	var afterSisters struct {
		ApprovalStatus string `json:"approval_status"`
	}
	decodeJSON(t, sistersResp, &afterSisters)
	assert.Equal(t, "approved_by_sisters", afterSisters.ApprovalStatus)

	// Fully approved entries reject further transitions
	again := do(t, env.server, "POST", "/api/general-cash/"+entry.ID+"/approve?approval_type=fede", nil, env.token)
	assert.Equal(t, http.StatusConflict, again.StatusCode)
	again.Body.Close()
}

func TestE2E_StudioRunningBalances(t *testing.T) {
	env := setupTestEnv(t)
	createProject(t, env, "Pájaro")

	first := do(t, env.server, "POST", "/api/deco-movements",
		jsonBody(t, map[string]any{
			"date":         "2026-03-01",
			"project_name": "Pájaro",
			"description":  "Anticipo del cliente",
			"income_ars":   "100000",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, first.StatusCode)
	var m1 struct {
		RunningBalanceARS decimal.Decimal `json:"running_balance_ars"`
	}
	decodeJSON(t, first, &m1)
	assert.True(t, m1.RunningBalanceARS.Equal(decimal.NewFromInt(100000)))

	second := do(t, env.server, "POST", "/api/deco-movements",
		jsonBody(t, map[string]any{
			"date":         "2026-03-05",
			"project_name": "Pájaro",
			"description":  "Compra de telas",
			"expense_ars":  "35000",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, second.StatusCode)
	var m2 struct {
		RunningBalanceARS decimal.Decimal `json:"running_balance_ars"`
	}
	decodeJSON(t, second, &m2)
	assert.True(t, m2.RunningBalanceARS.Equal(decimal.NewFromInt(65000)))

	listResp := do(t, env.server, "GET", "/api/deco-movements?project=P%C3%A1jaro", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list struct {
		Data  []json.RawMessage `json:"data"`
		Total int64             `json:"total"`
	}
	decodeJSON(t, listResp, &list)
	assert.Equal(t, int64(2), list.Total)
}

func TestE2E_CashCountDiscrepancyResolution(t *testing.T) {
	env := setupTestEnv(t)
	createProject(t, env, "Alvear")

	mov := do(t, env.server, "POST", "/api/deco-movements",
		jsonBody(t, map[string]any{
			"date":         "2026-04-01",
			"project_name": "Alvear",
			"description":  "Cobro parcial",
			"income_ars":   "10000",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, mov.StatusCode)
	mov.Body.Close()

	// Counted cash short by 500 against the ledger
	countResp := do(t, env.server, "POST", "/api/cash-counts",
		jsonBody(t, map[string]any{
			"count_date":       "2026-04-02",
			"deco_name":        "Alvear",
			"count_type":       "daily",
			"cash_ars_counted": "9500",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, countResp.StatusCode)
	var count struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		HasDiscrepancies bool   `json:"has_discrepancies"`
		Discrepancies    []struct {
			ID              string          `json:"id"`
			DiscrepancyType string          `json:"discrepancy_type"`
			Difference      decimal.Decimal `json:"difference"`
		} `json:"discrepancies"`
		LedgerComparisonARS *struct {
			Matches bool `json:"matches"`
		} `json:"ledger_comparison_ars"`
	}
	decodeJSON(t, countResp, &count)
	assert.True(t, count.HasDiscrepancies)
	require.NotNil(t, count.LedgerComparisonARS)
	assert.False(t, count.LedgerComparisonARS.Matches)
	require.Len(t, count.Discrepancies, 1)
	assert.Equal(t, "shortage", count.Discrepancies[0].DiscrepancyType)

	resolveResp := do(t, env.server, "POST",
		"/api/cash-counts/"+count.ID+"/discrepancies/"+count.Discrepancies[0].ID+"/resolve",
		jsonBody(t, map[string]any{"resolution_notes": "Vuelto mal registrado, ajustado en caja"}),
		env.token,
	)
	require.Equal(t, http.StatusOK, resolveResp.StatusCode)
	var resolved struct {
		Status           string `json:"status"`
		HasDiscrepancies bool   `json:"has_discrepancies"`
	}
	decodeJSON(t, resolveResp, &resolved)
	assert.Equal(t, "completed", resolved.Status)
	assert.False(t, resolved.HasDiscrepancies)
}

package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/momoney-backend/internal/adapter/repository/sqlstore"
	"github.com/simaogato/momoney-backend/internal/usecase/budget"
	"github.com/simaogato/momoney-backend/internal/usecase/category"
	"github.com/simaogato/momoney-backend/internal/usecase/report"
	"github.com/simaogato/momoney-backend/internal/usecase/transaction"
)

const testToken = "test-token-123"

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sqlstore.Open(sqlstore.DialectSQLite, filepath.Join(t.TempDir(), "rest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := test.NewNullLogger()
	txRepo := sqlstore.NewTransactionRepository(db)
	budgetRepo := sqlstore.NewBudgetRepository(db)
	categoryRepo := sqlstore.NewCategoryRepository(db)

	handler := NewHandler(
		report.NewReportService(txRepo, budgetRepo, nil, logger),
		transaction.NewTransactionService(txRepo, logger),
		budget.NewBudgetService(budgetRepo, txRepo, logger),
		category.NewCategoryService(categoryRepo),
	)

	return NewRouter(handler, testToken, logger)
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealthz_NoAuth(t *testing.T) {
	r := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware(t *testing.T) {
	r := setupTestRouter(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "Missing header", header: "", want: http.StatusUnauthorized},
		{name: "Wrong token", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "Raw token", header: testToken, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestReportFlow(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/budgets", map[string]interface{}{"category": "Groceries", "amount": "400"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount":   "500",
		"category": "Groceries",
		"date":     "2025-01-05T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount":    2000,
		"category":  "Salary",
		"date":      "2025-01-01T00:00:00Z",
		"is_income": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		MonthlySummaries []struct {
			Month string `json:"month"`
			Net   string `json:"net"`
		} `json:"monthly_summaries"`
		CategoryTotals []struct {
			Category string `json:"category"`
			Total    string `json:"total"`
			Color    string `json:"color"`
		} `json:"category_totals"`
		BudgetProgress []struct {
			Progress   float64 `json:"progress"`
			OverBudget bool    `json:"over_budget"`
			Status     string  `json:"status"`
		} `json:"budget_progress"`
		Failures []string `json:"failures"`
	}
	decode(t, w, &resp)

	require.Len(t, resp.MonthlySummaries, 1)
	assert.Equal(t, "2025-01", resp.MonthlySummaries[0].Month)
	assert.Equal(t, "1500", resp.MonthlySummaries[0].Net)
	require.Len(t, resp.CategoryTotals, 1)
	assert.Equal(t, "Groceries", resp.CategoryTotals[0].Category)
	assert.Equal(t, report.CategoryColor("Groceries"), resp.CategoryTotals[0].Color)
	require.Len(t, resp.BudgetProgress, 1)
	assert.Equal(t, 1.0, resp.BudgetProgress[0].Progress)
	assert.True(t, resp.BudgetProgress[0].OverBudget)
	assert.Equal(t, "over", resp.BudgetProgress[0].Status)
	assert.Empty(t, resp.Failures)
}

func TestTransactionCRUD(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/transactions", map[string]interface{}{"amount": "12.50", "category": "Rent"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, w, &created)

	w = do(t, r, http.MethodPut, "/api/transactions/"+created.ID, map[string]interface{}{"amount": "99", "category": "Utilities"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/transactions/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Amount   string `json:"amount"`
		Category string `json:"category"`
	}
	decode(t, w, &got)
	assert.Equal(t, "99", got.Amount)
	assert.Equal(t, "Utilities", got.Category)

	w = do(t, r, http.MethodDelete, "/api/transactions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/transactions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorMapping(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/budgets", map[string]interface{}{"category": "Rent", "amount": "1200"})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{name: "Duplicate budget", method: http.MethodPost, path: "/api/budgets", body: map[string]interface{}{"category": "rent", "amount": "5"}, want: http.StatusConflict},
		{name: "Negative budget", method: http.MethodPost, path: "/api/budgets", body: map[string]interface{}{"category": "Fun", "amount": "-5"}, want: http.StatusBadRequest},
		{name: "Zero transaction", method: http.MethodPost, path: "/api/transactions", body: map[string]interface{}{"amount": "0"}, want: http.StatusBadRequest},
		{name: "Malformed body", method: http.MethodPost, path: "/api/transactions", body: "not an object", want: http.StatusBadRequest},
		{name: "Malformed id", method: http.MethodGet, path: "/api/budgets/abc", want: http.StatusBadRequest},
		{name: "Unknown budget", method: http.MethodDelete, path: "/api/budgets/7d0e5f4c-1b9f-4d2c-9a43-2f6f1c9e0b11", want: http.StatusNotFound},
		{name: "Empty category name", method: http.MethodPost, path: "/api/categories", body: map[string]interface{}{"name": "  "}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestBudgetsAndCategories(t *testing.T) {
	r := setupTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/categories", map[string]interface{}{"name": "Travel"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/api/categories", map[string]interface{}{"name": "travel"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/api/budgets", map[string]interface{}{"category": "Travel", "amount": "300", "period": "Yearly"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		ID     string `json:"id"`
		Period string `json:"period"`
	}
	decode(t, w, &created)
	assert.Equal(t, "Yearly", created.Period)

	w = do(t, r, http.MethodPost, "/api/transactions", map[string]interface{}{"amount": "75", "category": "Travel"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodGet, "/api/budgets/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var item struct {
		Category string `json:"category"`
		Usage    struct {
			Spent     string  `json:"spent"`
			Remaining string  `json:"remaining"`
			Progress  float64 `json:"progress"`
			Status    string  `json:"status"`
		} `json:"usage"`
	}
	decode(t, w, &item)
	assert.Equal(t, "Travel", item.Category)
	assert.Equal(t, "75", item.Usage.Spent)
	assert.Equal(t, "225", item.Usage.Remaining)
	assert.Equal(t, 0.25, item.Usage.Progress)
	assert.Equal(t, "on_track", item.Usage.Status)

	w = do(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var categories []struct {
		Name string `json:"name"`
	}
	decode(t, w, &categories)
	require.Len(t, categories, 1)
	assert.Equal(t, "Travel", categories[0].Name)
}

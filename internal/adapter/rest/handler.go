package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/simaogato/momoney-backend/internal/usecase/budget"
	"github.com/simaogato/momoney-backend/internal/usecase/category"
	"github.com/simaogato/momoney-backend/internal/usecase/report"
	"github.com/simaogato/momoney-backend/internal/usecase/transaction"
)

// Handler serves the JSON API on top of the use case services
type Handler struct {
	ReportService      *report.ReportService
	TransactionService *transaction.TransactionService
	BudgetService      *budget.BudgetService
	CategoryService    *category.CategoryService
}

// NewHandler creates a new Handler instance
func NewHandler(
	reportService *report.ReportService,
	transactionService *transaction.TransactionService,
	budgetService *budget.BudgetService,
	categoryService *category.CategoryService,
) *Handler {
	return &Handler{
		ReportService:      reportService,
		TransactionService: transactionService,
		BudgetService:      budgetService,
		CategoryService:    categoryService,
	}
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReport handles GET /api/reports
func (h *Handler) GetReport(c *gin.Context) {
	result, err := h.ReportService.GenerateReport(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newReportResponse(result))
}

// ListTransactions handles GET /api/transactions
func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.TransactionService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]transactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, newTransactionResponse(tx))
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransaction handles GET /api/transactions/:id
func (h *Handler) GetTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tx, err := h.TransactionService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(tx))
}

// CreateTransaction handles POST /api/transactions
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.TransactionService.Record(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(tx))
}

// UpdateTransaction handles PUT /api/transactions/:id
func (h *Handler) UpdateTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.TransactionService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(tx))
}

// DeleteTransaction handles DELETE /api/transactions/:id
func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.TransactionService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBudgets handles GET /api/budgets
func (h *Handler) ListBudgets(c *gin.Context) {
	items, err := h.BudgetService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]budgetItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newBudgetItemResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// GetBudget handles GET /api/budgets/:id
func (h *Handler) GetBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.BudgetService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBudgetItemResponse(item))
}

// CreateBudget handles POST /api/budgets
func (h *Handler) CreateBudget(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.BudgetService.Add(c.Request.Context(), req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBudgetResponse(b))
}

// UpdateBudget handles PUT /api/budgets/:id
func (h *Handler) UpdateBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.BudgetService.Update(c.Request.Context(), id, req.input())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBudgetResponse(b))
}

// DeleteBudget handles DELETE /api/budgets/:id
func (h *Handler) DeleteBudget(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.BudgetService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListCategories handles GET /api/categories
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, categoryResponse{ID: cat.ID.String(), Name: cat.Name})
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCategory handles POST /api/categories
func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat, err := h.CategoryService.Add(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoryResponse{ID: cat.ID.String(), Name: cat.Name})
}

func (r transactionRequest) input() transaction.RecordTransactionInput {
	var date time.Time
	if r.Date != nil {
		date = *r.Date
	}
	return transaction.RecordTransactionInput{
		Amount:   r.Amount,
		Category: r.Category,
		Date:     date,
		Notes:    r.Notes,
		IsIncome: r.IsIncome,
	}
}

func (r budgetRequest) input() budget.BudgetInput {
	return budget.BudgetInput{
		Category: r.Category,
		Amount:   r.Amount,
		Period:   r.Period,
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps domain errors to HTTP status codes
func writeError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		code = http.StatusGatewayTimeout
	}

	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(code, gin.H{"error": "internal error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

package grpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/simaogato/momoney-backend/internal/usecase/budget"
	"github.com/simaogato/momoney-backend/internal/usecase/report"
	"github.com/simaogato/momoney-backend/internal/usecase/transaction"
)

// Server implements the ReportService gRPC server
type Server struct {
	ReportService      *report.ReportService
	BudgetService      *budget.BudgetService
	TransactionService *transaction.TransactionService
}

var _ ReportServiceServer = (*Server)(nil)

// NewServer creates a new gRPC server instance
func NewServer(
	reportService *report.ReportService,
	budgetService *budget.BudgetService,
	transactionService *transaction.TransactionService,
) *Server {
	return &Server{
		ReportService:      reportService,
		BudgetService:      budgetService,
		TransactionService: transactionService,
	}
}

// GetReport handles the GetReport RPC
func (s *Server) GetReport(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	result, err := s.ReportService.GenerateReport(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(reportPayload(result))
}

// ListBudgets handles the ListBudgets RPC
func (s *Server) ListBudgets(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	items, err := s.BudgetService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	budgets := make([]interface{}, 0, len(items))
	for _, item := range items {
		budgets = append(budgets, progressPayload(item.Usage))
	}

	return toStruct(map[string]interface{}{"budgets": budgets})
}

// RecordTransaction handles the RecordTransaction RPC
// Request fields: amount (decimal string or number), category, date (RFC 3339 or YYYY-MM-DD, optional), notes, is_income
func (s *Server) RecordTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	// Parse amount from string or number to decimal
	amount, err := parseAmount(fields["amount"])
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount format: %v", err)
	}

	// Parse optional date
	var date time.Time
	if raw := fields["date"].GetStringValue(); raw != "" {
		date, err = parseDate(raw)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid date format: %v", err)
		}
	}

	input := transaction.RecordTransactionInput{
		Amount:   amount,
		Category: fields["category"].GetStringValue(),
		Date:     date,
		Notes:    fields["notes"].GetStringValue(),
		IsIncome: fields["is_income"].GetBoolValue(),
	}

	// Call usecase service
	tx, err := s.TransactionService.Record(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return toStruct(transactionPayload(tx))
}

func parseAmount(v *structpb.Value) (decimal.Decimal, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return decimal.NewFromString(strings.TrimSpace(kind.StringValue))
	case *structpb.Value_NumberValue:
		return decimal.NewFromFloat(kind.NumberValue), nil
	default:
		return decimal.Zero, errors.New("amount is required")
	}
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}

func toStruct(payload map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

func reportPayload(r *report.Report) map[string]interface{} {
	months := make([]interface{}, 0, len(r.MonthlySummaries))
	for _, m := range r.MonthlySummaries {
		months = append(months, map[string]interface{}{
			"month":    m.Key.String(),
			"label":    m.Label(),
			"income":   m.Income.String(),
			"expenses": m.Expenses.String(),
			"net":      m.Net().String(),
		})
	}

	categories := make([]interface{}, 0, len(r.CategoryTotals))
	for _, c := range r.CategoryTotals {
		categories = append(categories, map[string]interface{}{
			"category": c.Category,
			"total":    c.Total.String(),
			"color":    c.Color,
		})
	}

	budgets := make([]interface{}, 0, len(r.BudgetProgress))
	for _, p := range r.BudgetProgress {
		budgets = append(budgets, progressPayload(p))
	}

	failures := make([]interface{}, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, f.Error())
	}

	return map[string]interface{}{
		"monthly_summaries": months,
		"category_totals":   categories,
		"budget_progress":   budgets,
		"failures":          failures,
	}
}

func progressPayload(p domain.BudgetProgress) map[string]interface{} {
	return map[string]interface{}{
		"budget_id":   p.BudgetID.String(),
		"category":    p.Category,
		"period":      p.Period,
		"spent":       p.Spent.String(),
		"limit":       p.Limit.String(),
		"remaining":   p.Remaining().String(),
		"progress":    p.Progress(),
		"over_budget": p.IsOverBudget(),
		"status":      string(domain.StatusOf(p)),
	}
}

func transactionPayload(tx *domain.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"id":        tx.ID.String(),
		"amount":    tx.Amount.String(),
		"category":  tx.Category,
		"date":      tx.Date.Format(time.RFC3339),
		"notes":     tx.Notes,
		"is_income": tx.IsIncome,
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return status.Errorf(codes.NotFound, "%s", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return status.Errorf(codes.AlreadyExists, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		// Default to Internal error for unknown errors
		return status.Error(codes.Internal, fmt.Sprintf("internal error: %v", err))
	}
}

package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/simaogato/momoney-backend/internal/domain"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ReportService handles report generation for the presentation layer
type ReportService struct {
	TransactionRepo domain.TransactionReader
	BudgetRepo      domain.BudgetReader
	Notifier        domain.OverrunNotifier // Optional, nil disables overrun alerts
	Logger          logrus.FieldLogger

	mu      sync.Mutex
	alerted map[uuid.UUID]struct{} // budgets notified since they last went over
}

// NewReportService creates a new ReportService instance
func NewReportService(
	transactionRepo domain.TransactionReader,
	budgetRepo domain.BudgetReader,
	notifier domain.OverrunNotifier,
	logger logrus.FieldLogger,
) *ReportService {
	return &ReportService{
		TransactionRepo: transactionRepo,
		BudgetRepo:      budgetRepo,
		Notifier:        notifier,
		Logger:          logger.WithField("component", "report"),
		alerted:         make(map[uuid.UUID]struct{}),
	}
}

// GenerateReport reads one snapshot of the ledger and budgets and builds every sub-report from it
// Logic:
//  1. List transactions and budgets exactly once each (concurrently)
//  2. BuildReport over that snapshot
//  3. Log item failures and overruns, then hand newly crossed budgets to the notifier
//
// Only a failed read returns an error; item failures are carried in Report.Failures.
func (s *ReportService) GenerateReport(ctx context.Context) (*Report, error) {
	var (
		transactions []*domain.Transaction
		budgets      []*domain.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.TransactionRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = s.BudgetRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"transactions": len(transactions),
		"budgets":      len(budgets),
	}).Debug("building report")

	report := BuildReport(transactions, budgets)

	for _, failure := range report.Failures {
		s.Logger.WithFields(logrus.Fields{
			"kind":  failure.Kind,
			"index": failure.Index,
			"id":    failure.ID,
		}).WithError(failure.Err).Warn("skipped invalid snapshot item")
	}

	overruns := report.OverBudget()
	for _, over := range overruns {
		s.Logger.WithFields(logrus.Fields{
			"category": over.Category,
			"spent":    over.Spent.StringFixed(2),
			"limit":    over.Limit.StringFixed(2),
		}).Warn("budget overrun")
	}
	if s.Notifier != nil {
		s.notifyOverruns(ctx, overruns)
	}

	s.Logger.WithFields(logrus.Fields{
		"months":     len(report.MonthlySummaries),
		"categories": len(report.CategoryTotals),
		"budgets":    len(report.BudgetProgress),
		"failures":   len(report.Failures),
	}).Info("report generated")

	return report, nil
}

// notifyOverruns publishes the budgets that went over since they were last alerted.
// A budget that is no longer over becomes eligible again; a failed publish is retried on the next report.
func (s *ReportService) notifyOverruns(ctx context.Context, overruns []domain.BudgetProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.alerted == nil {
		s.alerted = make(map[uuid.UUID]struct{})
	}

	current := make(map[uuid.UUID]struct{}, len(overruns))
	for _, over := range overruns {
		current[over.BudgetID] = struct{}{}
	}
	for id := range s.alerted {
		if _, ok := current[id]; !ok {
			delete(s.alerted, id)
		}
	}

	for _, over := range overruns {
		if _, done := s.alerted[over.BudgetID]; done {
			continue
		}
		if err := s.Notifier.NotifyOverrun(ctx, over); err != nil {
			s.Logger.WithField("category", over.Category).WithError(err).Error("failed to publish overrun alert")
			continue
		}
		s.alerted[over.BudgetID] = struct{}{}
	}
}

package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/simaogato/momoney-backend/internal/domain"
)

// BudgetOverrunMessage announces that a budget's spending exceeded its limit
type BudgetOverrunMessage struct {
	BudgetID  uuid.UUID       `json:"budget_id"`
	Category  string          `json:"category"`
	Period    string          `json:"period"`
	Spent     decimal.Decimal `json:"spent"`
	Limit     decimal.Decimal `json:"limit"`
	Progress  float64         `json:"progress"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewBudgetOverrunMessage builds the message for one over-budget row
func NewBudgetOverrunMessage(p domain.BudgetProgress) *BudgetOverrunMessage {
	return &BudgetOverrunMessage{
		BudgetID:  p.BudgetID,
		Category:  p.Category,
		Period:    p.Period,
		Spent:     p.Spent,
		Limit:     p.Limit,
		Progress:  p.Progress(),
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *BudgetOverrunMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

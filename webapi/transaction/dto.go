package transaction

import (
	"time"

	"github.com/fintrack/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "2006-01-02"

// CreateTransactionRequest is the request body for recording a ledger entry.
// Amount is an always-positive magnitude; Direction carries the sign.
type CreateTransactionRequest struct {
	AccountID   string          `json:"account_id" validate:"required,uuid"`
	CategoryID  *string         `json:"category_id" validate:"omitempty,uuid"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Direction   string          `json:"direction" validate:"required,oneof=INCOME EXPENSE"`
	Description string          `json:"description" validate:"required,max=255"`
	Date        string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateTransactionRequest carries optional fields for a partial update.
// Amount and Direction apply only when both are present.
type UpdateTransactionRequest struct {
	AccountID   *string          `json:"account_id" validate:"omitempty,uuid"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
	Amount      *decimal.Decimal `json:"amount"`
	Direction   *string          `json:"direction" validate:"omitempty,oneof=INCOME EXPENSE"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// TransactionResponse is the API representation of a ledger entry. Amount is
// reported as a positive magnitude with the direction alongside.
type TransactionResponse struct {
	ID           string          `json:"id"`
	AccountID    string          `json:"account_id"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Amount       decimal.Decimal `json:"amount"`
	Direction    string          `json:"direction"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToTransactionResponse maps a transaction read model to its API representation.
func ToTransactionResponse(t *dto.TransactionRead) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:           t.ID.String(),
		AccountID:    t.AccountID.String(),
		CategoryID:   t.CategoryID.String(),
		CategoryName: t.CategoryName,
		Amount:       t.Amount.Abs(),
		Direction:    t.Direction,
		Description:  t.Description,
		Date:         t.Date.Format(dateLayout),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToTransactionResponses maps a listing.
func ToTransactionResponses(ts []*dto.TransactionRead) []*TransactionResponse {
	out := make([]*TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}

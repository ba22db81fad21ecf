package account

import (
	"time"

	"github.com/fintrack/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the request body for creating an account.
type CreateAccountRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Type           string          `json:"type" validate:"required,oneof=CHECKING SAVINGS CREDIT INVESTMENT"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
}

// UpdateAccountRequest carries optional fields for a partial account update.
type UpdateAccountRequest struct {
	Name           *string          `json:"name" validate:"omitempty,max=255"`
	Type           *string          `json:"type" validate:"omitempty,oneof=CHECKING SAVINGS CREDIT INVESTMENT"`
	InitialBalance *decimal.Decimal `json:"initial_balance"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BalanceResponse reports a derived balance; it is never persisted.
type BalanceResponse struct {
	AccountID string          `json:"account_id,omitempty"`
	Balance   decimal.Decimal `json:"balance"`
}

// ToAccountResponse maps an account read model to its API representation.
func ToAccountResponse(a *dto.AccountRead) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:             a.ID.String(),
		Name:           a.Name,
		Type:           a.Type,
		InitialBalance: a.InitialBalance,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAccountResponses maps a listing.
func ToAccountResponses(accounts []*dto.AccountRead) []*AccountResponse {
	out := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, ToAccountResponse(a))
	}
	return out
}

package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fintrack/ledger/internal/fixtures/mocks"
	"github.com/fintrack/ledger/pkg/config"
	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/dto"
	"github.com/fintrack/ledger/pkg/repository"
	accountsvc "github.com/fintrack/ledger/pkg/service/account"
	"github.com/fintrack/ledger/webapi/account"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *mocks.MockUnitOfWork) {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	deps := config.Deps{
		Uow:    uow,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	app := fiber.New()
	cfg := &config.App{Jwt: config.Jwt{Secret: testSecret}}
	account.Routes(app, accountsvc.NewService(deps), cfg)
	return app, uow
}

func bearerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func passthroughDo(uow *mocks.MockUnitOfWork) {
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
}

func TestCreateAccount_Created(t *testing.T) {
	app, uow := newTestApp(t)
	userID := uuid.New()
	accountRepo := mocks.NewMockAccountRepository(t)

	passthroughDo(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	accountRepo.EXPECT().Get(mock.Anything, mock.Anything, userID).RunAndReturn(
		func(ctx context.Context, id, uid uuid.UUID) (*dto.AccountRead, error) {
			return &dto.AccountRead{
				ID:             id,
				UserID:         uid,
				Name:           "Main Checking",
				Type:           "CHECKING",
				InitialBalance: decimal.RequireFromString("1000.00"),
			}, nil
		},
	).Once()

	body := `{"name":"Main Checking","type":"CHECKING","initial_balance":"1000.00"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, userID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Main Checking")
}

func TestCreateAccount_RejectsUnknownType(t *testing.T) {
	app, _ := newTestApp(t)

	body := `{"name":"Wallet","type":"WALLET"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, uuid.New()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateAccount_MissingToken(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(`{}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAccount_NotFound(t *testing.T) {
	app, uow := newTestApp(t)
	userID := uuid.New()
	accountRepo := mocks.NewMockAccountRepository(t)

	passthroughDo(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	accountRepo.EXPECT().Get(mock.Anything, mock.Anything, userID).
		Return(nil, domain.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/accounts/"+uuid.NewString(), nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, userID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
}

func TestGetAccount_InvalidID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/accounts/not-a-uuid", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, uuid.New()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTotalBalance_RouteNotShadowedByID(t *testing.T) {
	app, uow := newTestApp(t)
	userID := uuid.New()
	accountRepo := mocks.NewMockAccountRepository(t)
	txRepo := mocks.NewMockTransactionRepository(t)

	passthroughDo(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	accountRepo.EXPECT().SumInitialBalances(mock.Anything, userID).
		Return(decimal.RequireFromString("1500.00"), nil).Once()
	txRepo.EXPECT().SumByUser(mock.Anything, userID).
		Return(decimal.RequireFromString("850.50"), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/accounts/balance", nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, userID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data account.BalanceResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "2350.5", envelope.Data.Balance.String())
}

func TestDeleteAccount_ConflictWithActiveTransactions(t *testing.T) {
	app, uow := newTestApp(t)
	userID := uuid.New()
	accountID := uuid.New()
	accountRepo := mocks.NewMockAccountRepository(t)
	txRepo := mocks.NewMockTransactionRepository(t)

	passthroughDo(uow)
	uow.EXPECT().AccountRepository().Return(accountRepo, nil).Once()
	uow.EXPECT().TransactionRepository().Return(txRepo, nil).Once()
	accountRepo.EXPECT().Get(mock.Anything, accountID, userID).
		Return(&dto.AccountRead{ID: accountID, UserID: userID}, nil).Once()
	txRepo.EXPECT().HasActiveByAccount(mock.Anything, accountID, userID).
		Return(true, nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/accounts/"+accountID.String(), nil)
	req.Header.Set(fiber.HeaderAuthorization, bearerToken(t, userID))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

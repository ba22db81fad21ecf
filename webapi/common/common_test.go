package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fintrack/ledger/pkg/domain"
	"github.com/fintrack/ledger/pkg/domain/ledger"
	"github.com/fintrack/ledger/pkg/domain/money"
	"github.com/fintrack/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil defaults to 500", nil, fiber.StatusInternalServerError},
		{"not found", domain.ErrNotFound, fiber.StatusNotFound},
		{"account not found", ledger.ErrAccountNotFound, fiber.StatusNotFound},
		{"already exists", domain.ErrAlreadyExists, fiber.StatusConflict},
		{"account has transactions", ledger.ErrAccountHasTransactions, fiber.StatusConflict},
		{"invalid account type", ledger.ErrInvalidAccountType, fiber.StatusUnprocessableEntity},
		{"invalid direction", ledger.ErrInvalidDirection, fiber.StatusUnprocessableEntity},
		{"non-positive magnitude", money.ErrNonPositiveMagnitude, fiber.StatusBadRequest},
		{"negative initial balance", ledger.ErrNegativeInitialBalance, fiber.StatusBadRequest},
		{"validation", domain.ErrValidation, fiber.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("start after end: %w", domain.ErrValidation), fiber.StatusBadRequest},
		{"unknown error", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, common.ErrorToStatusCode(tt.err))
		})
	}
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/broken", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Account not found", ledger.ErrAccountNotFound)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Account not found", pd.Title)
	assert.Equal(t, fiber.StatusNotFound, pd.Status)
	assert.Equal(t, "/broken", pd.Instance)
}

func TestProblemDetailsJSON_StatusOverride(t *testing.T) {
	app := fiber.New()
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Nope", errors.New("boom"), fiber.StatusTeapot, "cannot brew")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "cannot brew", pd.Detail)
}

type createPayload struct {
	Name string `json:"name" validate:"required,max=10"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/things", func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[createPayload](c)
		if err != nil {
			return nil
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "created", input)
	})

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{"name":"rent"}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `"rent"`)
	})

	t.Run("missing required field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/things", strings.NewReader(`{`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fintrack/ledger/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormError(t *testing.T) {
	unknown := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil passes through", nil, nil},
		{"duplicated key", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"wrapped duplicated key", fmt.Errorf("create category: %w", gorm.ErrDuplicatedKey), domain.ErrAlreadyExists},
		{"unknown error untouched", unknown, unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapGormError(tt.in)
			if tt.want == nil {
				require.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

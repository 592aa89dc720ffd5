package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "halaqat_backend/internals/databases"
	"halaqat_backend/internals/features/donations/donations/dto"
	"halaqat_backend/internals/helpers/apperror"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	st, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st.DB
}

func TestTotalsEmpty(t *testing.T) {
	db := openDB(t)

	got, err := Totals(context.Background(), db)
	require.NoError(t, err)
	assert.True(t, got.Total.IsZero())
	assert.True(t, got.Allocated.IsZero())
	assert.EqualValues(t, 0, got.Count)
}

func TestCreateAndTotals(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, amount := range []string{"100", "", "200"} {
		d, err := dto.DonationForm{DonorName: "متبرع", Amount: amount}.ToModel(now)
		require.NoError(t, err)
		_, err = Create(ctx, db, d)
		require.NoError(t, err)
	}

	got, err := Totals(ctx, db)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(300)), got.Total.String())
	assert.True(t, got.Allocated.Equal(decimal.NewFromInt(210)), got.Allocated.String())
	assert.True(t, got.Remaining.Equal(decimal.NewFromInt(90)), got.Remaining.String())
	assert.EqualValues(t, 3, got.Count)

	rows, err := ListRecent(ctx, db, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(200)))
	assert.True(t, rows[1].Amount.IsZero())
	assert.Equal(t, "تبرع عام", rows[1].Purpose)
}

func TestGetAndUpdate(t *testing.T) {
	db := openDB(t)
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	d, err := dto.DonationForm{DonorName: "متبرع", Amount: "100"}.ToModel(now)
	require.NoError(t, err)
	id, err := Create(ctx, db, d)
	require.NoError(t, err)

	tests := []struct {
		name     string
		id       int64
		notFound bool
	}{
		{"existing donation", id, false},
		{"unknown id", id + 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upd, err := dto.DonationForm{DonorName: "محدث", Amount: "250", Purpose: "كفالة"}.ToModel(now)
			require.NoError(t, err)

			err = Update(ctx, db, tt.id, upd)
			if tt.notFound {
				assert.True(t, apperror.IsNotFound(err), "err = %v", err)
				_, err = Get(ctx, db, tt.id)
				assert.True(t, apperror.IsNotFound(err), "err = %v", err)
				return
			}
			require.NoError(t, err)

			got, err := Get(ctx, db, tt.id)
			require.NoError(t, err)
			require.NotNil(t, got.DonorName)
			assert.Equal(t, "محدث", *got.DonorName)
			assert.True(t, got.Amount.Equal(decimal.NewFromInt(250)), got.Amount.String())
			assert.Equal(t, "كفالة", got.Purpose)
		})
	}
}

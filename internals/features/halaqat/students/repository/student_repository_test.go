package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"halaqat_backend/internals/constants"
	database "halaqat_backend/internals/databases"
	halaqaModel "halaqat_backend/internals/features/halaqat/halaqat/model"
	"halaqat_backend/internals/features/halaqat/students/model"
	"halaqat_backend/internals/helpers/apperror"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	st, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st.DB
}

// seed creates circles "ب" (id 1) and "أ" (id 2) and three students, one
// without a circle.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, name := range []string{"حلقة ب", "حلقة أ"} {
		require.NoError(t, db.Create(&halaqaModel.Halaqa{Name: name, MaxCapacity: 30}).Error)
	}
	one, two := int64(1), int64(2)
	students := []model.Student{
		{Name: "ياسر", HalaqaID: &one, Status: constants.StatusActive},
		{Name: "أحمد", HalaqaID: &two, Status: constants.StatusActive},
		{Name: "محمد", Status: constants.StatusActive},
	}
	for i := range students {
		_, err := Create(context.Background(), db, &students[i])
		require.NoError(t, err)
	}
}

func names(rows []model.StudentWithHalaqa) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestListJoinsCircleName(t *testing.T) {
	db := openDB(t)
	seed(t, db)

	rows, err := List(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []string{"أحمد", "محمد", "ياسر"}, names(rows))

	tests := []struct {
		idx  int
		want *string
	}{
		{0, strPtr("حلقة أ")},
		{1, nil},
		{2, strPtr("حلقة ب")},
	}
	for _, tt := range tests {
		t.Run(rows[tt.idx].Name, func(t *testing.T) {
			assert.Equal(t, tt.want, rows[tt.idx].HalaqaName)
		})
	}
}

func TestRecentNewestFirst(t *testing.T) {
	db := openDB(t)
	seed(t, db)

	rows, err := Recent(context.Background(), db, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"محمد", "أحمد"}, names(rows))
}

func TestCount(t *testing.T) {
	db := openDB(t)
	seed(t, db)
	one, missing := int64(1), int64(99)

	tests := []struct {
		name   string
		halaqa *int64
		want   int64
	}{
		{"all students", nil, 3},
		{"one circle", &one, 1},
		{"unknown circle", &missing, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Count(context.Background(), db, tt.halaqa)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestUpdate(t *testing.T) {
	db := openDB(t)
	seed(t, db)
	ctx := context.Background()

	tests := []struct {
		name     string
		id       int64
		notFound bool
	}{
		{"existing student", 3, false},
		{"unknown id", 42, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			one := int64(1)
			err := Update(ctx, db, tt.id, &model.Student{Name: "محمد علي", HalaqaID: &one, Status: constants.StatusActive})
			if tt.notFound {
				assert.True(t, apperror.IsNotFound(err), "err = %v", err)
				return
			}
			require.NoError(t, err)

			got, err := Get(ctx, db, tt.id)
			require.NoError(t, err)
			assert.Equal(t, "محمد علي", got.Name)
			require.NotNil(t, got.HalaqaID)
			assert.EqualValues(t, 1, *got.HalaqaID)
		})
	}
}

func strPtr(s string) *string { return &s }

package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFuncs(t *testing.T) {
	d := datatypes.Date(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	c := datatypes.NewTime(16, 30, 0, 0)
	name := "زيد"
	age := 12
	hid := int64(4)

	assert.Equal(t, "2024-01-02", date(&d))
	assert.Equal(t, "", date(nil))
	assert.Equal(t, "16:30", clock(&c))
	assert.Equal(t, "150.50", money(decimal.RequireFromString("150.5")))
	assert.Equal(t, "0.00", money(decimal.NullDecimal{}))
	assert.Equal(t, "3.00", money(3.0))
	assert.Equal(t, "زيد", str(&name))
	assert.Equal(t, "12", num(&age))
	assert.Equal(t, "4", id(&hid))
	assert.Equal(t, "", id(nil))
}

func TestEngineRendersEveryPage(t *testing.T) {
	engine := Engine()
	require.NoError(t, engine.Load())

	pages := []string{
		"dashboard/index", "students/list", "students/form",
		"halaqat/list", "halaqat/detail", "halaqat/form",
		"teachers/list", "teachers/detail", "teachers/form",
		"attendance/page", "donations/list", "donations/form",
		"fundraising/list", "fundraising/form",
		"reports/index", "reports/ai", "error",
	}
	for _, p := range pages {
		t.Run(p, func(t *testing.T) {
			var buf bytes.Buffer
			err := engine.Render(&buf, p, fiber.Map{"Title": "t"}, Layout)
			require.NoError(t, err)
			assert.Contains(t, buf.String(), "<html")
		})
	}
}

package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "halaqat_backend/internals/databases"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	st, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	for _, q := range []string{
		`INSERT INTO halaqat (id, name) VALUES (1, 'الفجر'), (2, 'العصر')`,
		`INSERT INTO students (name, halaqa_id) VALUES ('A', 1), ('B', 1), ('C', 2)`,
		`INSERT INTO donations (donor_name, amount) VALUES ('x', 300)`,
	} {
		require.NoError(t, st.DB.Exec(q).Error)
	}

	ctl := NewReportController(st.DB)
	now := func() time.Time { return time.Date(2024, 4, 2, 18, 5, 0, 0, time.UTC) }
	ctl.Now, ctl.Aggregator.Now = now, now

	app := fiber.New()
	app.Post("/generate_ai_report", ctl.Generate)
	app.Post("/export_report_pdf", ctl.Export)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestGenerateAllocation(t *testing.T) {
	app := newApp(t)

	out := decode(t, post(t, app, "/generate_ai_report", `{"report_type":"allocation","halaqa_id":null}`))
	require.Equal(t, true, out["success"])
	report := out["report"].(map[string]any)
	assert.Equal(t, "allocation", report["type"])
	assert.InDelta(t, 150, report["per_halaqa"], 1e-9)
	allocations := report["allocations"].([]any)
	require.Len(t, allocations, 4)
	assert.InDelta(t, 60, allocations[0].(map[string]any)["amount"], 1e-9)
}

func TestGenerateDefaultsToWeekly(t *testing.T) {
	app := newApp(t)

	out := decode(t, post(t, app, "/generate_ai_report", ``))
	report := out["report"].(map[string]any)
	assert.Equal(t, "weekly", report["type"])
	assert.Equal(t, "التقرير الأسبوعي - جميع الحلقات", report["title"])
	assert.Equal(t, "2024-04-02 18:05:00", report["generated_at"])
}

func TestGenerateUnsupportedAndInvalid(t *testing.T) {
	app := newApp(t)

	out := decode(t, post(t, app, "/generate_ai_report", `{"report_type":"daily"}`))
	assert.Equal(t, true, out["success"])
	report := out["report"].(map[string]any)
	assert.Equal(t, "error", report["status"])
	assert.Equal(t, []any{"weekly", "performance", "allocation"}, report["available_types"])

	out = decode(t, post(t, app, "/generate_ai_report", `{"report_type":"weekly","halaqa_id":"x1"}`))
	assert.Equal(t, false, out["success"])
}

func TestExport(t *testing.T) {
	app := newApp(t)

	out := decode(t, post(t, app, "/export_report_pdf", `{"report":{}}`))
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "لا توجد بيانات تقرير للتصدير", out["message"])

	out = decode(t, post(t, app, "/export_report_pdf", `{}`))
	assert.Equal(t, "لا توجد بيانات تقرير للتصدير", out["message"])

	resp := post(t, app, "/export_report_pdf", `{"report":{"type":"weekly","title":"تقرير تجريبي","summary":{"total_students":3,"total_halaqat":2,"total_donations":300,"attendance_rate":85}}}`)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="report_20240402_1805.txt"`, resp.Header.Get("Content-Disposition"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "📋 تقرير تجريبي")
	assert.Contains(t, string(body), "💰 إجمالي التبرعات: 300.00 ريال")
}

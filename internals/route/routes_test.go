package routes

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"halaqat_backend/internals/configs"
	database "halaqat_backend/internals/databases"
	"halaqat_backend/internals/helpers/apperror"
	"halaqat_backend/internals/views"
)

func newApp(t *testing.T, cfg configs.AppConfig) *fiber.App {
	t.Helper()
	app, _ := newAppWithStore(t, cfg)
	return app
}

func newAppWithStore(t *testing.T, cfg configs.AppConfig) (*fiber.App, *database.Storage) {
	t.Helper()
	st, err := database.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		Views:        views.Engine(),
		ViewsLayout:  views.Layout,
		ErrorHandler: ErrorHandler,
	})
	SetupRoutes(app, st, cfg)
	return app, st
}

func testConfig() configs.AppConfig {
	return configs.AppConfig{SecretKey: "test-secret", Environment: "test"}
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestHealth(t *testing.T) {
	app := newApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(body(t, resp), &out))
	assert.Equal(t, "OK", out["status"])
	assert.Equal(t, "sqlite", out["backend"])
	assert.Equal(t, "test", out["environment"])
}

func TestAddStudentThenList(t *testing.T) {
	app := newApp(t, testConfig())

	form := url.Values{"name": {"عبدالله"}, "age": {"12"}, "gender": {"ذكر"}}
	req := httptest.NewRequest(http.MethodPost, "/students/add", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/students", resp.Header.Get(fiber.HeaderLocation))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/students", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "عبدالله")
}

func TestAddStudentRequiresName(t *testing.T) {
	app := newApp(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/students/add", strings.NewReader("name=+"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "alert-danger")
}

func TestPagesRender(t *testing.T) {
	app := newApp(t, testConfig())

	for _, path := range []string{
		"/", "/students", "/students/add", "/halaqat", "/halaqat/add",
		"/teachers", "/teachers/add", "/attendance", "/donations", "/donations/add",
		"/fundraising", "/fundraising/add", "/reports", "/ai_reports",
	} {
		t.Run(path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, body(t, resp), "نظام إدارة الحلقات")
		})
	}
}

func TestNotFoundRendersErrorPage(t *testing.T) {
	app := newApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body(t, resp), "الصفحة غير موجودة")
}

func TestGenerateReportEndpoint(t *testing.T) {
	app := newApp(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/generate_ai_report",
		strings.NewReader(`{"report_type":"allocation","time_period":"current_month","halaqa_id":"all"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(body(t, resp), &out))
	assert.Equal(t, true, out["success"])
	assert.NotNil(t, out["report"])
}

func TestExportCSV(t *testing.T) {
	app := newApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/export_data/students", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/csv")
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "students_")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/export_data/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/reports", resp.Header.Get(fiber.HeaderLocation))
}

func TestAdminGuardMounted(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	cfg := testConfig()
	cfg.AdminUsername = "admin"
	cfg.AdminPasswordHash = string(hash)
	app := newApp(t, cfg)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/students", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/students", nil)
	req.SetBasicAuth("admin", "s3cret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestJSONEndpointErrorsStayJSON(t *testing.T) {
	app := newApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/mark_attendance", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, sonic.UnmarshalString(body(t, resp), &out))
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "الطريقة غير مسموحة", out["message"])
}

func TestStorageErrorShownOnSamePage(t *testing.T) {
	tests := []struct {
		table string
		path  string
		want  string
	}{
		{"students", "/students", "خطأ في تحميل قائمة الطلاب"},
		{"halaqat", "/halaqat", "خطأ في تحميل قائمة الحلقات"},
		{"teachers", "/teachers", "خطأ في تحميل قائمة المعلمين"},
		{"donations", "/donations", "خطأ في تحميل قائمة التبرعات"},
		{"fundraising_campaigns", "/fundraising", "خطأ في تحميل حملات جمع التبرعات"},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			app, st := newAppWithStore(t, testConfig())
			require.NoError(t, st.DB.Exec("DROP TABLE "+tt.table).Error)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, body(t, resp), tt.want)

			// the message must not follow the user to the next page
			next := httptest.NewRequest(http.MethodGet, "/reports", nil)
			for _, ck := range resp.Cookies() {
				next.AddCookie(ck)
			}
			resp, err = app.Test(next)
			require.NoError(t, err)
			assert.NotContains(t, body(t, resp), tt.want)
		})
	}
}

func TestEditDonationAndCampaign(t *testing.T) {
	tests := []struct {
		name    string
		addPath string
		addForm url.Values
		old     string
		edit    string
		missing string
		list    string
		newForm url.Values
		want    string
	}{
		{
			name:    "donation",
			addPath: "/donations/add",
			addForm: url.Values{"donor_name": {"متبرع قديم"}, "amount": {"100"}},
			old:     "متبرع قديم",
			edit:    "/donation/1/edit",
			missing: "/donation/99/edit",
			list:    "/donations",
			newForm: url.Values{"donor_name": {"متبرع جديد"}, "amount": {"150"}},
			want:    "متبرع جديد",
		},
		{
			name:    "campaign",
			addPath: "/fundraising/add",
			addForm: url.Values{"campaign_name": {"حملة قديمة"}, "target_amount": {"1000"}},
			old:     "حملة قديمة",
			edit:    "/fundraising/1/edit",
			missing: "/fundraising/99/edit",
			list:    "/fundraising",
			newForm: url.Values{"campaign_name": {"حملة جديدة"}, "target_amount": {"1000"}, "current_amount": {"500"}},
			want:    "حملة جديدة",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp(t, testConfig())
			post := func(path string, form url.Values) *http.Response {
				req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
				req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
				resp, err := app.Test(req)
				require.NoError(t, err)
				return resp
			}

			resp := post(tt.addPath, tt.addForm)
			require.Equal(t, fiber.StatusFound, resp.StatusCode)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.edit, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Contains(t, body(t, resp), tt.old)

			resp = post(tt.edit, tt.newForm)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, tt.list, resp.Header.Get(fiber.HeaderLocation))

			resp, err = app.Test(httptest.NewRequest(http.MethodGet, tt.list, nil))
			require.NoError(t, err)
			assert.Contains(t, body(t, resp), tt.want)

			resp = post(tt.missing, tt.newForm)
			assert.Equal(t, fiber.StatusFound, resp.StatusCode)
			assert.Equal(t, tt.list, resp.Header.Get(fiber.HeaderLocation))
		})
	}
}

func TestErrorHandlerStatus(t *testing.T) {
	app := fiber.New(fiber.Config{
		Views:        views.Engine(),
		ViewsLayout:  views.Layout,
		ErrorHandler: ErrorHandler,
	})

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"storage failure", apperror.Storage("list students", errors.New("no such table")), fiber.StatusInternalServerError},
		{"missing record", apperror.Storage("get student", gorm.ErrRecordNotFound), fiber.StatusNotFound},
		{"fiber error", fiber.ErrBadRequest, fiber.StatusBadRequest},
	}
	for i, tt := range tests {
		path := "/fail/" + strconv.Itoa(i)
		err := tt.err
		app.Get(path, func(c *fiber.Ctx) error { return err })

		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			var out map[string]interface{}
			require.NoError(t, sonic.UnmarshalString(body(t, resp), &out))
			assert.Equal(t, false, out["success"])
		})
	}
}

func TestReportsPageListsExports(t *testing.T) {
	app := newApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/reports", nil))
	require.NoError(t, err)
	out := body(t, resp)
	for _, kind := range []string{"students", "halaqat", "attendance", "donations"} {
		assert.Contains(t, out, `href="/export_data/`+kind+`"`)
	}
}

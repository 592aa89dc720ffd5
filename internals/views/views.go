// Package views embeds the server-rendered pages and builds their engine.
package views

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	helper "halaqat_backend/internals/helpers"
)

//go:embed templates
var templates embed.FS

// Layout is the wrapper every page is embedded in.
const Layout = "layouts/main"

// Engine returns the html engine over the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	for name, fn := range Funcs() {
		engine.AddFunc(name, fn)
	}
	return engine
}

func Funcs() map[string]interface{} {
	return map[string]interface{}{
		"date":  date,
		"clock": clock,
		"money": money,
		"str":   str,
		"num":   num,
		"id":    id,
		"add":   func(a, b int) int { return a + b },
		"json": func(v interface{}) (string, error) {
			return sonic.MarshalString(v)
		},
	}
}

func date(d *datatypes.Date) string {
	return helper.FormatDate(d)
}

func clock(t *datatypes.Time) string {
	if t == nil {
		return ""
	}
	s := t.String()
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}

// money renders amounts with two decimals; nil and unset values are "0.00".
func money(v interface{}) string {
	switch m := v.(type) {
	case decimal.Decimal:
		return m.StringFixed(2)
	case decimal.NullDecimal:
		if !m.Valid {
			return "0.00"
		}
		return m.Decimal.StringFixed(2)
	case float64:
		return decimal.NewFromFloat(m).StringFixed(2)
	case int64:
		return decimal.NewFromInt(m).StringFixed(2)
	case int:
		return decimal.NewFromInt(int64(m)).StringFixed(2)
	default:
		return "0.00"
	}
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int) string {
	if p == nil {
		return ""
	}
	return decimal.NewFromInt(int64(*p)).String()
}

// id formats an optional foreign key for comparison with form values.
func id(p *int64) string {
	if p == nil {
		return ""
	}
	return decimal.NewFromInt(*p).String()
}

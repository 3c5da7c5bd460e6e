package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin/render"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// layoutFile is parsed together with every page; pages define "content"
const layoutFile = "templates/layout.html"

// Renderer implements gin's render.HTMLRender over the embedded pages.
// Each page is its own template set so "content" blocks never collide.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page with the shared layout
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	funcs := funcMap()
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := path.Base(file)
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.pages[name]
	if !ok {
		tmpl = r.pages["error.html"]
		data = errorView{pageData: pageData{Title: "Error"}, Status: 500, Detail: "missing template " + name}
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

// Static returns the embedded stylesheet directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var (
	titleCaser   = cases.Title(language.English)
	moneyPrinter = message.NewPrinter(language.English)
)

func funcMap() template.FuncMap {
	return template.FuncMap{
		"title":      titleCase,
		"money":      formatMoney,
		"formatDate": formatDate,
		"display":    display,
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
	}
}

// titleCase turns route names such as "reinsurance" or "claims_by_month" into labels
func titleCase(s string) string {
	return titleCaser.String(strings.NewReplacer("_", " ", "-", " ").Replace(s))
}

// formatMoney groups thousands and keeps two decimals, e.g. 1234.5 -> "1,234.50"
func formatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// display renders a record field for list and detail tables
func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case decimal.Decimal:
		return formatMoney(x)
	case decimal.NullDecimal:
		if !x.Valid {
			return ""
		}
		return formatMoney(x.Decimal)
	case *valueobject.Date:
		if x == nil {
			return ""
		}
		return x.String()
	case time.Time:
		if x.IsZero() {
			return ""
		}
		return x.Format("2006-01-02 15:04")
	case *time.Time:
		if x == nil {
			return ""
		}
		return display(*x)
	case *uint:
		if x == nil {
			return ""
		}
		return fmt.Sprint(*x)
	case bool:
		if x {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(x)
	}
}

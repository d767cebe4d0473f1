package api

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

var eastern = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// formatEST renders a timestamp the way the admin inbox displays it.
func formatEST(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(eastern).Format("01/02/2006 at 03:04 PM MST")
}

func dollars(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func dollarsFromCents(cents int64) string {
	return dollars(float64(cents) / 100)
}

// Renderer implements echo.Renderer over the embedded page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"formatEST":        formatEST,
		"dollars":          dollars,
		"dollarsFromCents": dollarsFromCents,
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// render executes a page template with the pending flashes merged in.
func (h *Handler) render(c echo.Context, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Flashes"] = h.sessions.Flashes(c)
	return c.Render(200, name, data)
}

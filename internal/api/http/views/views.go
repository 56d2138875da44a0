// Package views renders the dashboard's HTML pages. Every page is embedded
// into the shared layout.
package views

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"

	"github.com/spec-kit/supplychain-dashboard/internal/auth"
	"github.com/spec-kit/supplychain-dashboard/internal/domain"
	"github.com/spec-kit/supplychain-dashboard/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the binding every template receives.
type Page struct {
	Title   string
	AppName string
	Path    string
	Subject string
	Role    domain.Role
	Nav     []auth.NavigationEntry
	Flashes []session.Flash
	// Errors maps form fields to validation messages.
	Errors map[string]string
	// Form echoes submitted values back into the form.
	Form map[string]string
	Data any
}

// LoggedIn reports whether the page is rendered for a decoded session.
func (p Page) LoggedIn() bool {
	return p.Role != ""
}

// LayoutName is the template every page is rendered through.
const LayoutName = "layout"

// Engine is the fiber.Views implementation for the dashboard: the gofiber
// html engine over the embedded templates, stamping the app name on pages.
type Engine struct {
	*html.Engine
	appName string
}

// New returns an engine; templates are parsed on Load.
func New(appName string) *Engine {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("views: embedded templates: %v", err))
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(funcs)
	return &Engine{Engine: engine, appName: appName}
}

// Render writes page name through the layout. Without an explicit layout
// the shared one is used.
func (e *Engine) Render(w io.Writer, name string, binding interface{}, layout ...string) error {
	if page, ok := binding.(Page); ok && page.AppName == "" {
		page.AppName = e.appName
		binding = page
	}
	if len(layout) == 0 || layout[0] == "" {
		layout = []string{LayoutName}
	}
	return e.Engine.Render(w, name, binding, layout...)
}

var funcs = map[string]interface{}{
	"money": func(v float64) string {
		return fmt.Sprintf("$%.2f", v)
	},
	"field": func(m map[string]string, key string) string {
		return m[key]
	},
	"next": func(s domain.OrderStatus) string {
		n, ok := s.Next()
		if !ok {
			return ""
		}
		return string(n)
	},
	"isCurrent": func(current, target string) bool {
		return current == target
	},
}

package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"gharBack/internal/models"
)

// Data is the payload every page template receives.
type Data struct {
	IsAuthenticated bool
	User            models.User
	Flash           string
	FlashError      string
	Form            url.Values
	CurrentYear     int
	Page            map[string]interface{}
}

var functions = template.FuncMap{
	"inr": models.FormatINR,
	"humanDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006")
	},
}

type Engine struct {
	templates map[string]*template.Template
}

// NewEngine parses every *.page.tmpl in dir together with the shared
// *.layout.tmpl files and keeps the result in memory.
func NewEngine(dir string) (*Engine, error) {
	cache := map[string]*template.Template{}

	pages, err := filepath.Glob(filepath.Join(dir, "*.page.tmpl"))
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.New(name).Funcs(functions).ParseFiles(page)
		if err != nil {
			return nil, err
		}
		ts, err = ts.ParseGlob(filepath.Join(dir, "*.layout.tmpl"))
		if err != nil {
			return nil, err
		}
		cache[name] = ts
	}

	return &Engine{templates: cache}, nil
}

// Render writes the page to a buffer first so a template failure never
// leaves a half-written response behind.
func (e *Engine) Render(w http.ResponseWriter, status int, page string, data *Data) error {
	ts, ok := e.templates[page]
	if !ok {
		return fmt.Errorf("the template %q does not exist", page)
	}

	if data == nil {
		data = &Data{}
	}
	data.CurrentYear = time.Now().Year()
	if data.Form == nil {
		data.Form = url.Values{}
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

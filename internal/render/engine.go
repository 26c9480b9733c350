package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates
var templateFS embed.FS

// Engine wraps a pongo2 template set loaded from the embedded templates
// directory. Compiled templates are cached; the engine is safe for
// concurrent use.
type Engine struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
}

// NewEngine constructs an Engine over the embedded template files.
func NewEngine() (*Engine, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("render: opening embedded templates: %w", err)
	}

	return &Engine{
		set:       pongo2.NewSet("wallpack", pongo2.NewFSLoader(sub)),
		templates: make(map[string]*pongo2.Template),
	}, nil
}

// Render executes the named template with the given data and returns the
// output. Data is converted to a template context via its JSON form, so
// template variables follow the struct json tags. Optional writers receive
// a copy of the rendered output.
func (e *Engine) Render(name string, data any, out ...io.Writer) (string, error) {
	tmpl, err := e.template(name)
	if err != nil {
		return "", err
	}

	ctx, err := toContext(data)
	if err != nil {
		return "", fmt.Errorf("render: convert data for %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return "", fmt.Errorf("render: execute template %q: %w", name, err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// template returns a compiled template from the cache, compiling on first use.
func (e *Engine) template(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.templates[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if tmpl, ok := e.templates[name]; ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", name, err)
	}
	e.templates[name] = tmpl
	return tmpl, nil
}

// toContext converts arbitrary data to a pongo2 context through its JSON
// representation, so field names match the json struct tags.
func toContext(data any) (pongo2.Context, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return pongo2.Context(m), nil
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
	defaultEngineErr  error
)

// engine returns the shared Engine over the embedded templates.
func engine() (*Engine, error) {
	defaultEngineOnce.Do(func() {
		defaultEngine, defaultEngineErr = NewEngine()
	})
	return defaultEngine, defaultEngineErr
}

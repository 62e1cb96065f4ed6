package export

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/portfolio-builder/internal/projection"
	"github.com/jonathan/portfolio-builder/internal/rendering"
)

//go:embed templates/*
var templateFiles embed.FS

var documentTemplate = template.Must(template.New("document.html.tmpl").Funcs(template.FuncMap{
	"dict":      dict,
	"joinClass": joinClass,
	// Styles and links were sanitised by the projection
	"css":   func(s string) template.CSS { return template.CSS(s) },
	"url":   func(s string) template.URL { return template.URL(s) },
	"width": func(w int) template.CSS { return template.CSS(fmt.Sprintf("width: %d%%", w)) },
}).ParseFS(templateFiles, "templates/document.html.tmpl"))

// GenerateDocument renders page as a complete standalone HTML document
func GenerateDocument(page *projection.Page) (string, error) {
	if page == nil {
		return "", &rendering.RenderError{Message: "nil page"}
	}
	return execute(documentTemplate, page)
}

func execute(tmpl *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", &rendering.TemplateError{Message: "failed to execute " + tmpl.Name(), Cause: err}
	}
	return b.String(), nil
}

func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict needs key/value pairs, got %d arguments", len(kv))
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %v is not a string", kv[i])
		}
		m[key] = kv[i+1]
	}
	return m, nil
}

func joinClass(a, b string) string {
	return strings.TrimSpace(a + " " + b)
}

// Where: internal/infra/render/banner.go
// What: Text rendering for the post-scaffold success banner.
// Why: Usage hints are configurable, so the banner is a template rather than
// fixed print statements.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// Hint is one usage command shown in the banner.
type Hint struct {
	Command     string
	Description string
}

// SuccessData feeds templates/success.tmpl.
type SuccessData struct {
	AppName string
	Dir     string
	Hints   []Hint
}

// Success renders the success banner.
func Success(data SuccessData) (string, error) {
	return renderTemplate("success.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}

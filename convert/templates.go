package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"ldc/config"
	"ldc/ldoc"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Titles     []string
	Language   string
	Date       string
	Authors    []string
	Subjects   []string
	SourceFile string
	ID         string
}

func expandTemplate(doc *ldoc.Document, name config.TemplateFieldName, field, srcName string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	titles := doc.Terms("title")
	values := Values{
		Context:    string(name),
		Title:      strings.Join(titles, ", "),
		Titles:     titles,
		Language:   firstTerm(doc, "language"),
		Date:       firstTerm(doc, "date"),
		Authors:    doc.Terms("creator"),
		Subjects:   doc.Terms("subject"),
		SourceFile: strings.TrimSuffix(filepath.Base(srcName), filepath.Ext(srcName)),
		ID:         firstTerm(doc, "identifier"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func firstTerm(doc *ldoc.Document, name string) string {
	if vals := doc.Terms(name); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

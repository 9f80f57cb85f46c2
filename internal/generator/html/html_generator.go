package htmlgenerator

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BalanceBalls/worklog-report/internal/report"
)

type HtmlGenerator struct {
	reportsDir   string
	tmplName     string
	generateFile bool
}

//go:embed *.tmpl
var tpls embed.FS

var funcs = template.FuncMap{
	"unquote": func(s string) string { return strings.TrimSuffix(strings.TrimPrefix(s, `"`), `"`) },
}

func New(reportsDir string, tmplName string, generateFile bool) *HtmlGenerator {
	return &HtmlGenerator{
		reportsDir:   reportsDir,
		tmplName:     tmplName,
		generateFile: generateFile,
	}
}

type templateData struct {
	Name  string
	From  string
	To    string
	Query report.Query
	Rows  []report.ReportRow
}

func (g *HtmlGenerator) Generate(r report.Report) (report.Result, error) {
	tmpl, err := template.New(g.tmplName).Funcs(funcs).ParseFS(tpls, g.tmplName)
	if err != nil {
		return report.Result{}, fmt.Errorf(
			"failed to parse template file for html report: %w", err)
	}

	data := templateData{
		Name:  r.Name(),
		From:  r.Query.DateFrom.Format(),
		Query: r.Query,
		Rows:  r.Rows,
	}
	if !r.Query.DateTo.IsZero() {
		data.To = r.Query.DateTo.Format()
	}

	var buf bytes.Buffer
	if err = tmpl.ExecuteTemplate(&buf, g.tmplName, data); err != nil {
		return report.Result{}, fmt.Errorf(
			"failed to generate an html report: %w", err)
	}

	result := report.Result{
		Name: r.Name() + ".html",
		Data: buf.Bytes(),
	}

	if g.generateFile {
		if err = g.writeFile(result); err != nil {
			return report.Result{}, err
		}
	}

	return result, nil
}

func (g *HtmlGenerator) writeFile(result report.Result) error {
	if err := os.MkdirAll(g.reportsDir, fs.ModePerm); err != nil {
		return fmt.Errorf("failed to create reports folder: %w", err)
	}

	path := filepath.Join(g.reportsDir, result.Name)
	if err := os.WriteFile(path, result.Data, 0644); err != nil {
		return fmt.Errorf("failed to create html file for report: %w", err)
	}

	return nil
}

package generator

import (
	"fmt"

	"github.com/BalanceBalls/worklog-report/internal/config"
	csvgenerator "github.com/BalanceBalls/worklog-report/internal/generator/csv"
	htmlgenerator "github.com/BalanceBalls/worklog-report/internal/generator/html"
	"github.com/BalanceBalls/worklog-report/internal/report"
)

type Generator interface {
	Generate(report report.Report) (report.Result, error)
}

// New picks the generator for the configured report format.
func New(cfg *config.Config, format string) (Generator, error) {
	switch format {
	case "", "csv":
		return csvgenerator.New(cfg.CsvSeparator), nil
	case "html":
		return htmlgenerator.New(cfg.ReportFileDir, cfg.ReportTemplate, cfg.GenerateFile), nil
	default:
		return nil, fmt.Errorf("unknown report format %q, expected csv or html", format)
	}
}

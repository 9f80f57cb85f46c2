package csvgenerator

import (
	"bytes"
	"strings"

	"github.com/BalanceBalls/worklog-report/internal/report"
)

var header = []string{"date", "logtime", "key", "title", "user", "userid", "timespent", "comment"}

// CsvGenerator writes one line per row. Title and hours are always
// quoted, other fields only when they hold the separator, a quote or a
// line break.
type CsvGenerator struct {
	separator string
}

func New(separator string) *CsvGenerator {
	if separator == "" {
		separator = ","
	}

	return &CsvGenerator{separator: separator}
}

func (g *CsvGenerator) Generate(r report.Report) (report.Result, error) {
	var buf bytes.Buffer

	buf.WriteString(strings.Join(header, g.separator))
	buf.WriteByte('\n')

	for _, row := range r.Rows {
		fields := []string{
			g.field(row.Date),
			g.field(row.Time),
			g.field(row.IssueKey),
			quoteField(unwrap(row.IssueTitle)),
			g.field(row.UserDisplayName),
			g.field(row.UserNickname),
			quoteField(unwrap(row.HoursSpent)),
			g.field(row.Comment),
		}
		buf.WriteString(strings.Join(fields, g.separator))
		buf.WriteByte('\n')
	}

	return report.Result{
		Name: r.Name() + ".csv",
		Data: buf.Bytes(),
	}, nil
}

func (g *CsvGenerator) field(s string) string {
	if strings.Contains(s, g.separator) || strings.ContainsAny(s, "\"\r\n") {
		return quoteField(s)
	}
	return s
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// unwrap drops the single pair of quotes rows carry around title and hours.
func unwrap(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

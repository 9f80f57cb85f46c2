package builder

import (
	"context"
	"strings"
	"time"

	"github.com/BalanceBalls/worklog-report/internal/clients/jira"
	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
)

// FetchAndFilter returns the report rows of a single issue, unordered.
func (wb *WorklogBuilder) FetchAndFilter(ctx context.Context, issue report.Issue, q report.Query) ([]report.ReportRow, error) {
	logger := logger.GetFromContext(ctx)

	page, err := jira.Await(ctx, wb.client.Worklogs(ctx, target(q), issue.Key))
	if err != nil {
		return nil, classify(err)
	}

	rows := []report.ReportRow{}
	for _, entry := range page.Worklogs {
		started, err := entry.StartedAt()
		if err != nil {
			logger.WarnContext(ctx, "worklog entry skipped", "issue", issue.Key, "error", err)
			continue
		}

		started = started.In(wb.opts.Location)
		day := report.DateOf(started)

		inRange := inDateRange(day, q)
		byAuthor := wb.matchesAuthor(entry, q)

		if wb.opts.Debug {
			logger.InfoContext(ctx, "worklog entry checked",
				"issue", issue.Key,
				"started", entry.Started,
				"date", day.String(),
				"date_from", q.DateFrom.String(),
				"date_to", q.DateTo.String(),
				"in_range", inRange,
				"nickname", q.AuthorNickname,
				"author_name", entry.Author.Name,
				"nickname_match", q.AuthorNickname == entry.Author.Name,
				"account_id", q.AuthorAccountId,
				"author_account_id", entry.Author.AccountId,
				"account_id_match", q.AuthorAccountId == entry.Author.AccountId)
		}

		if !inRange || !byAuthor {
			continue
		}

		rows = append(rows, wb.buildRow(issue, entry, started, q))
	}

	return rows, nil
}

func inDateRange(day report.Date, q report.Query) bool {
	if day.Before(q.DateFrom) {
		return false
	}

	return q.DateTo.IsZero() || !day.After(q.DateTo)
}

func (wb *WorklogBuilder) matchesAuthor(entry jira.Worklog, q report.Query) bool {
	if !q.HasAuthor() {
		return wb.opts.AuthorMode == AuthorAll
	}

	return (q.AuthorNickname != "" && q.AuthorNickname == entry.Author.Name) ||
		(q.AuthorAccountId != "" && q.AuthorAccountId == entry.Author.AccountId)
}

func (wb *WorklogBuilder) buildRow(issue report.Issue, entry jira.Worklog, started time.Time, q report.Query) report.ReportRow {
	row := report.ReportRow{
		Date:            report.DateOf(started).String(),
		Time:            started.Format("15:04:05"),
		IssueKey:        issue.Key,
		IssueTitle:      quote(strings.ReplaceAll(issue.Title, "\r\n", "")),
		UserDisplayName: entry.Author.DisplayName,
		UserNickname:    q.AuthorNickname,
		HoursSpent:      quote(formatHours(entry.TimeSpentSeconds)),
	}

	if entry.Comment != "" {
		row.Comment = wb.opts.Comments.Apply(entry.Comment)
	}

	return row
}

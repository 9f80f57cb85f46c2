package builder

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BalanceBalls/worklog-report/internal/clients/jira"
	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
	"golang.org/x/exp/slices"
)

var (
	ErrConnection = errors.New("problems while connecting to jira")
	ErrNoData     = jira.ErrNoData
)

type Builder interface {
	Build(ctx context.Context, q report.Query) ([]report.ReportRow, error)
}

type Client interface {
	Search(ctx context.Context, target jira.Target, req jira.SearchRequest) <-chan jira.Response[jira.SearchResult]
	Worklogs(ctx context.Context, target jira.Target, issueKey string) <-chan jira.Response[jira.WorklogPage]
}

// AuthorMode decides what happens to worklog entries when the query has
// neither a nickname nor an account id.
type AuthorMode int

const (
	// No entry passes without an author filter
	AuthorStrict AuthorMode = iota
	// Every entry passes without an author filter
	AuthorAll
)

func (m *AuthorMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "strict":
		*m = AuthorStrict
	case "all":
		*m = AuthorAll
	default:
		return fmt.Errorf("unknown author filter mode %q, expected strict or all", text)
	}

	return nil
}

func (m AuthorMode) String() string {
	if m == AuthorAll {
		return "all"
	}
	return "strict"
}

type Options struct {
	MaxIssues  int
	// Logs every checked worklog entry at info level
	Debug      bool
	AuthorMode AuthorMode
	Comments   *CommentFilter

	// Worklog start times are converted to this location before the date
	// is taken. Nil means time.Local.
	Location *time.Location
}

type WorklogBuilder struct {
	client Client
	opts   Options
}

func New(client Client, opts Options) *WorklogBuilder {
	if opts.Comments == nil {
		opts.Comments = DefaultCommentFilter()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &WorklogBuilder{
		client: client,
		opts:   opts,
	}
}

type issueRows struct {
	index int
	report.Channel
}

// Build collects the worklog rows of every issue matching the query.
// Either all issues are processed or an error is returned, partial
// reports are never produced.
func (wb *WorklogBuilder) Build(ctx context.Context, q report.Query) ([]report.ReportRow, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := logger.GetFromContext(ctx)
	logger.InfoContext(ctx, "collecting report",
		"nickname", q.AuthorNickname,
		"account_id", q.AuthorAccountId,
		"from", q.DateFrom.String(),
		"to", q.DateTo.String())

	issues, err := wb.FindIssues(ctx, q)
	if err != nil {
		return nil, err
	}

	respch := make(chan issueRows, len(issues))
	for i, issue := range issues {
		go func(i int, issue report.Issue) {
			rows, err := wb.FetchAndFilter(ctx, issue, q)
			respch <- issueRows{index: i, Channel: report.Channel{Rows: rows, Err: err}}
		}(i, issue)
	}

	// Rows are kept in issue order, not arrival order, so that ties in
	// the sort below always resolve the same way.
	perIssue := make([][]report.ReportRow, len(issues))
	for range issues {
		select {
		case <-ctx.Done():
			return nil, classify(ctx.Err())
		case resp := <-respch:
			if resp.Err != nil {
				logger.ErrorContext(ctx, "report aborted", "issue", issues[resp.index].Key, "error", resp.Err)
				return nil, resp.Err
			}
			perIssue[resp.index] = resp.Rows
		}
	}

	result := []report.ReportRow{}
	for _, rows := range perIssue {
		result = append(result, rows...)
	}
	sortRows(result)

	logger.InfoContext(ctx, "report collected", "nickname", q.AuthorNickname, "rows", len(result))
	return result, nil
}

func sortRows(rows []report.ReportRow) []report.ReportRow {
	slices.SortStableFunc(rows, func(a, b report.ReportRow) int {
		return a.Compare(b)
	})

	return rows
}

func target(q report.Query) jira.Target {
	return jira.Target{
		BaseUrl: q.ProjectUrl,
		ApiKey:  q.ApiKey,
	}
}

func classify(err error) error {
	if errors.Is(err, jira.ErrNoData) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrConnection, err)
}

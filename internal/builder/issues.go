package builder

import (
	"context"
	"fmt"
	"strings"

	"github.com/BalanceBalls/worklog-report/internal/clients/jira"
	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
)

// BuildJql returns the search query for issues that may hold worklogs
// matching q. The account id is preferred over the nickname.
func BuildJql(q report.Query) string {
	var b strings.Builder

	if q.ProjectKey != "" {
		fmt.Fprintf(&b, "project = %s AND ", q.ProjectKey)
	}

	from := q.DateFrom.JQL()
	fmt.Fprintf(&b, `updated > 0 AND updatedDate >= "%s" AND worklogDate >= "%s"`, from, from)

	if q.HasAuthor() {
		author := q.AuthorAccountId
		if author == "" {
			author = q.AuthorNickname
		}
		fmt.Fprintf(&b, ` AND worklogAuthor = "%s"`, author)
	}

	return b.String()
}

// FindIssues returns the issues in the order the service sent them.
func (wb *WorklogBuilder) FindIssues(ctx context.Context, q report.Query) ([]report.Issue, error) {
	logger := logger.GetFromContext(ctx)

	req := jira.SearchRequest{
		Jql:        BuildJql(q),
		MaxResults: wb.opts.MaxIssues,
	}
	logger.DebugContext(ctx, "searching issues", "jql", req.Jql, "max_results", req.MaxResults)

	result, err := jira.Await(ctx, wb.client.Search(ctx, target(q), req))
	if err != nil {
		return nil, classify(err)
	}

	issues := make([]report.Issue, 0, len(result.Issues))
	for _, record := range result.Issues {
		issues = append(issues, report.Issue{
			Key:   record.Key,
			Title: record.Fields.Summary,
		})
	}

	logger.InfoContext(ctx, "issues found", "nickname", q.AuthorNickname, "count", len(issues))
	return issues, nil
}

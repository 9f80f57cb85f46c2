package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BalanceBalls/worklog-report/internal/builder"
	"github.com/BalanceBalls/worklog-report/internal/clients/jira"
	"github.com/BalanceBalls/worklog-report/internal/config"
	"github.com/BalanceBalls/worklog-report/internal/generator"
	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
)

type flags struct {
	envFile    string
	from       string
	to         string
	nickname   string
	accountId  string
	projectKey string
	url        string
	apiKey     string
	format     string
	out        string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "worklog-report",
		Short: "Collect a Jira worklog report for a period",
		Long: `worklog-report searches Jira for issues with worklogs in the given period,
fetches their worklogs, keeps the entries of the requested user and prints
them sorted by date, user and issue key.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f)
		},
	}

	cmd.Flags().StringVar(&f.envFile, "env", ".env", "env file with defaults")
	cmd.Flags().StringVar(&f.from, "from", "", "first day of the period, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "last day of the period, YYYY-MM-DD (default: no upper bound)")
	cmd.Flags().StringVar(&f.nickname, "nickname", "", "Jira user name of the author")
	cmd.Flags().StringVar(&f.accountId, "account-id", "", "Jira account id of the author")
	cmd.Flags().StringVar(&f.projectKey, "project-key", "", "Jira project key (default: JIRA_PROJECT_KEY)")
	cmd.Flags().StringVar(&f.url, "url", "", "Jira base url (default: JIRA_URL)")
	cmd.Flags().StringVar(&f.apiKey, "api-key", "", "base64 encoded basic auth token (default: JIRA_API_KEY)")
	cmd.Flags().StringVar(&f.format, "format", "", "csv or html (default: REPORT_FORMAT)")
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file (default: stdout)")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return err
	}

	q, err := f.query(cfg)
	if err != nil {
		return err
	}

	opts, err := cfg.BuilderOptions()
	if err != nil {
		return err
	}

	format := f.format
	if format == "" {
		format = cfg.ReportFormat
	}
	gen, err := generator.New(cfg, format)
	if err != nil {
		return err
	}

	ctx := logger.AddToContext(cmd.Context(), logger.New(cmd.ErrOrStderr(), cfg.Debug))

	rows, err := builder.New(jira.NewClient(), opts).Build(ctx, q)
	if err != nil {
		return err
	}

	result, err := gen.Generate(report.Report{Query: q, Rows: rows})
	if err != nil {
		return err
	}

	if f.out == "" {
		_, err = cmd.OutOrStdout().Write(result.Data)
		return err
	}

	return os.WriteFile(f.out, result.Data, 0644)
}

func (f *flags) query(cfg *config.Config) (report.Query, error) {
	from, err := report.ParseDate(f.from)
	if err != nil {
		return report.Query{}, err
	}

	var to report.Date
	if f.to != "" {
		if to, err = report.ParseDate(f.to); err != nil {
			return report.Query{}, err
		}
	}

	q := report.Query{
		DateFrom:        from,
		DateTo:          to,
		AuthorNickname:  f.nickname,
		AuthorAccountId: f.accountId,
		ProjectUrl:      firstNonEmpty(f.url, cfg.JiraUrl),
		ProjectKey:      firstNonEmpty(f.projectKey, cfg.JiraProjectKey),
		ApiKey:          firstNonEmpty(f.apiKey, cfg.JiraApiKey),
	}

	if q.ProjectUrl == "" {
		return report.Query{}, fmt.Errorf("jira url is required, use --url or JIRA_URL")
	}

	return q, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

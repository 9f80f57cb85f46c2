package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/BalanceBalls/worklog-report/internal/builder"
)

type Config struct {
	JiraUrl        string             `env:"JIRA_URL"`
	JiraProjectKey string             `env:"JIRA_PROJECT_KEY"`
	JiraApiKey     string             `env:"JIRA_API_KEY"`
	MaxIssues      int                `env:"MAX_ISSUES" envDefault:"50"`
	Debug          bool               `env:"DEBUG" envDefault:"false"`
	AuthorFilter   builder.AuthorMode `env:"AUTHOR_FILTER" envDefault:"strict"`
	CommentPattern string             `env:"COMMENT_PATTERN"`
	TimeZone       string             `env:"TZ_NAME"`

	ReportFormat   string `env:"REPORT_FORMAT" envDefault:"csv"`
	CsvSeparator   string `env:"CSV_SEPARATOR" envDefault:","`
	ReportFileDir  string `env:"REPORT_FILE_DIR" envDefault:"./reports"`
	ReportTemplate string `env:"REPORT_TEMPLATE" envDefault:"html_report.tmpl"`
	GenerateFile   bool   `env:"GENERATE_FILE" envDefault:"false"`

	BotToken        string `env:"BOT_TOKEN"`
	CommandsTimeout int    `env:"COMMANDS_TIMEOUT" envDefault:"30"`
	DbDriver        string `env:"DB_DRIVER" envDefault:"sqlite"`
	DbName          string `env:"DB_NAME" envDefault:"bot.sqlite"`
}

// Load reads envFile when it exists and then parses the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s file: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse environment variables: %w", err)
	}

	return cfg, nil
}

// BuilderOptions turns the report related settings into pipeline options.
func (c *Config) BuilderOptions() (builder.Options, error) {
	comments, err := builder.NewCommentFilter(c.CommentPattern)
	if err != nil {
		return builder.Options{}, err
	}

	loc := time.Local
	if c.TimeZone != "" {
		loc, err = time.LoadLocation(c.TimeZone)
		if err != nil {
			return builder.Options{}, fmt.Errorf("unknown time zone %q: %w", c.TimeZone, err)
		}
	}

	return builder.Options{
		MaxIssues:  c.MaxIssues,
		Debug:      c.Debug,
		AuthorMode: c.AuthorFilter,
		Comments:   comments,
		Location:   loc,
	}, nil
}

func (c *Config) CommandsDeadline() time.Duration {
	return time.Duration(c.CommandsTimeout) * time.Second
}

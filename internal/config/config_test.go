package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BalanceBalls/worklog-report/internal/builder"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MaxIssues != 50 {
		t.Errorf("expected MaxIssues 50, got %d", cfg.MaxIssues)
	}
	if cfg.AuthorFilter != builder.AuthorStrict {
		t.Errorf("expected strict author filter, got %v", cfg.AuthorFilter)
	}
	if cfg.ReportFormat != "csv" || cfg.CsvSeparator != "," {
		t.Errorf("unexpected report defaults: %q %q", cfg.ReportFormat, cfg.CsvSeparator)
	}
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JIRA_URL=https://jira.example.com\nMAX_ISSUES=7\nAUTHOR_FILTER=all\nDEBUG=true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	// godotenv never overrides variables that are already set
	for _, key := range []string{"JIRA_URL", "MAX_ISSUES", "AUTHOR_FILTER", "DEBUG"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.JiraUrl != "https://jira.example.com" || cfg.MaxIssues != 7 || !cfg.Debug {
		t.Errorf("unexpected config %#v", cfg)
	}
	if cfg.AuthorFilter != builder.AuthorAll {
		t.Errorf("expected all author filter, got %v", cfg.AuthorFilter)
	}
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidAuthorFilter(t *testing.T) {
	t.Setenv("AUTHOR_FILTER", "everyone")

	if _, err := Load(""); err == nil {
		t.Fatal("expected an error for an unknown author filter")
	}
}

func TestBuilderOptions(t *testing.T) {
	cfg := &Config{MaxIssues: 3, Debug: true, CommentPattern: `#\d+`, TimeZone: "UTC"}

	opts, err := cfg.BuilderOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.MaxIssues != 3 || !opts.Debug || opts.Location != time.UTC {
		t.Errorf("unexpected options %#v", opts)
	}
	if got := opts.Comments.Apply("see #42"); got != "#42" {
		t.Errorf("comment pattern not applied, got %q", got)
	}

	cfg.CommentPattern = "(["
	if _, err := cfg.BuilderOptions(); err == nil {
		t.Error("expected an error for an invalid comment pattern")
	}
}

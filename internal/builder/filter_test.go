package builder

import (
	"context"
	"io"
	"testing"

	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	return logger.AddToContext(context.Background(), logger.New(io.Discard, true))
}

func TestCommentFilter_Apply(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		comment string
		want    string
	}{
		{
			name:    "tag extraction",
			pattern: `\[[A-Z]+-[A-Z]+\]`,
			comment: "foo\r\nbar [JIRA-TAG] baz",
			want:    "[JIRA-TAG]",
		},
		{
			name:    "several matches are joined",
			pattern: `#\d+`,
			comment: "fixed #12 and\n#34",
			want:    "#12#34",
		},
		{
			name:    "no match",
			pattern: `#\d+`,
			comment: "nothing here",
			want:    "",
		},
		{
			name:    "default keeps everything on one line",
			comment: "foo\r\nbar [JIRA-TAG]\nbaz",
			want:    "foo bar [JIRA-TAG] baz",
		},
		{
			name:    "line breaks inside matches become spaces",
			pattern: `(?s)<.*>`,
			comment: "x <a\nb> y",
			want:    "<a b>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCommentFilter(tt.pattern)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := f.Apply(tt.comment); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewCommentFilter_InvalidPattern(t *testing.T) {
	if _, err := NewCommentFilter("(["); err == nil {
		t.Fatal("expected an error for an invalid pattern")
	}
}

func TestBuildJql(t *testing.T) {
	from := report.Date{Year: 2023, Month: 1, Day: 1}

	tests := []struct {
		name string
		q    report.Query
		want string
	}{
		{
			name: "all users",
			q:    report.Query{DateFrom: from},
			want: `updated > 0 AND updatedDate >= "2023/01/01" AND worklogDate >= "2023/01/01"`,
		},
		{
			name: "project and nickname",
			q:    report.Query{DateFrom: from, ProjectKey: "PROJ", AuthorNickname: "alice"},
			want: `project = PROJ AND updated > 0 AND updatedDate >= "2023/01/01" AND worklogDate >= "2023/01/01" AND worklogAuthor = "alice"`,
		},
		{
			name: "account id preferred",
			q:    report.Query{DateFrom: from, AuthorNickname: "alice", AuthorAccountId: "5b10a2844c20165700ede21g"},
			want: `updated > 0 AND updatedDate >= "2023/01/01" AND worklogDate >= "2023/01/01" AND worklogAuthor = "5b10a2844c20165700ede21g"`,
		},
		{
			name: "account id only",
			q:    report.Query{DateFrom: from, AuthorAccountId: "acc"},
			want: `updated > 0 AND updatedDate >= "2023/01/01" AND worklogDate >= "2023/01/01" AND worklogAuthor = "acc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildJql(tt.q); got != tt.want {
				t.Errorf("unexpected jql:\n got %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestAuthorMode_UnmarshalText(t *testing.T) {
	var m AuthorMode

	if err := m.UnmarshalText([]byte("ALL")); err != nil || m != AuthorAll {
		t.Fatalf("expected AuthorAll, got %v (%v)", m, err)
	}
	if err := m.UnmarshalText([]byte("strict")); err != nil || m != AuthorStrict {
		t.Fatalf("expected AuthorStrict, got %v (%v)", m, err)
	}
	if err := m.UnmarshalText([]byte("everyone")); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestFormatHours(t *testing.T) {
	tests := map[int64]string{
		3600:  "1",
		5400:  "1.5",
		900:   "0.25",
		1000:  "0.2777777777777778",
		36000: "10",
	}

	for seconds, want := range tests {
		if got := formatHours(seconds); got != want {
			t.Errorf("formatHours(%d): expected %s, got %s", seconds, want, got)
		}
	}
}

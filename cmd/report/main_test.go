package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCmd_PrintsCsvReport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/api/2/search":
			fmt.Fprint(w, `{"issues":[{"key":"PROJ-1","fields":{"summary":"Login"}}]}`)
		case "/rest/api/2/issue/PROJ-1/worklog":
			fmt.Fprint(w, `{"worklogs":[
				{"started":"2023-01-15T10:00:00.000+0000","timeSpentSeconds":3600,
				 "author":{"name":"alice","accountId":"a","displayName":"Alice"}},
				{"started":"2023-01-16T10:00:00.000+0000","timeSpentSeconds":3600,
				 "author":{"name":"bob","accountId":"b","displayName":"Bob"}}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	t.Setenv("TZ_NAME", "UTC")
	t.Setenv("REPORT_FORMAT", "csv")
	t.Setenv("CSV_SEPARATOR", ",")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--env", filepath.Join(t.TempDir(), "none.env"),
		"--url", srv.URL,
		"--api-key", "a2V5",
		"--from", "2023-01-01",
		"--to", "2023-01-31",
		"--nickname", "alice",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", out.String())
	}
	if lines[1] != `20230115,10:00:00,PROJ-1,"Login",Alice,alice,"1",` {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestRootCmd_RequiresFrom(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--url", "http://localhost"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error without --from")
	}
}

func TestRootCmd_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{
		"--env", filepath.Join(t.TempDir(), "none.env"),
		"--url", srv.URL,
		"--from", "2023-01-01",
		"--nickname", "alice",
	})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "problems while connecting to jira") {
		t.Fatalf("expected a connection error, got %v", err)
	}
}

package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/BalanceBalls/worklog-report/internal/logger"
)

const (
	searchPath  = "/rest/api/2/search"
	worklogPath = "/rest/api/2/issue/%s/worklog"
)

var (
	ErrUnreachable = errors.New("jira is unreachable")
	ErrNoData      = errors.New("no data from the server")
)

type JiraClient struct {
	client http.Client
}

func NewClient() *JiraClient {
	return &JiraClient{
		client: http.Client{},
	}
}

func (jc *JiraClient) Search(ctx context.Context, target Target, req SearchRequest) <-chan Response[SearchResult] {
	return goAsync(ctx, func(ctx context.Context) (SearchResult, error) {
		logger := logger.GetFromContext(ctx)

		body, err := json.Marshal(req)
		if err != nil {
			return SearchResult{}, fmt.Errorf("could not encode search request: %w", err)
		}

		resData, err := jc.doRequest(ctx, target, http.MethodPost, searchPath, body)
		if err != nil {
			logger.ErrorContext(ctx, "search request failed", "error", err)
			return SearchResult{}, fmt.Errorf("search request failed: %w", err)
		}

		var result SearchResult
		if err = json.Unmarshal(resData, &result); err != nil {
			logger.ErrorContext(ctx, "response parsing failed", "error", err)
			return SearchResult{}, fmt.Errorf("%w: could not parse search response: %w", ErrUnreachable, err)
		}

		return result, nil
	})
}

// Worklogs fetches every worklog entry of the issue. A response without
// any payload is reported as ErrNoData, an empty worklog list is not.
func (jc *JiraClient) Worklogs(ctx context.Context, target Target, issueKey string) <-chan Response[WorklogPage] {
	return goAsync(ctx, func(ctx context.Context) (WorklogPage, error) {
		logger := logger.GetFromContext(ctx)
		path := fmt.Sprintf(worklogPath, url.PathEscape(issueKey))

		resData, err := jc.doRequest(ctx, target, http.MethodGet, path, nil)
		if err != nil {
			logger.ErrorContext(ctx, "worklog request failed", "issue", issueKey, "error", err)
			return WorklogPage{}, fmt.Errorf("worklog request for %s failed: %w", issueKey, err)
		}

		trimmed := bytes.TrimSpace(resData)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
			return WorklogPage{}, fmt.Errorf("worklog of %s: %w", issueKey, ErrNoData)
		}

		var page WorklogPage
		if err = json.Unmarshal(trimmed, &page); err != nil {
			logger.ErrorContext(ctx, "response parsing failed", "issue", issueKey, "error", err)
			return WorklogPage{}, fmt.Errorf("%w: could not parse worklog of %s: %w", ErrUnreachable, issueKey, err)
		}

		return page, nil
	})
}

func (jc *JiraClient) doRequest(ctx context.Context, target Target, method string, endpointPath string, body []byte) ([]byte, error) {
	logger := logger.GetFromContext(ctx)
	u := strings.TrimRight(target.BaseUrl, "/") + endpointPath

	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: could not construct request: %w", ErrUnreachable, err)
	}

	req.Header.Set("Authorization", "Basic "+target.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := jc.client.Do(req)
	if err != nil {
		logger.ErrorContext(ctx, "http request failed", "error", err)
		return nil, fmt.Errorf("%w: failed to query jira api (%q): %w", ErrUnreachable, endpointPath, err)
	}
	defer res.Body.Close()

	logger.InfoContext(ctx, "http request finished",
		"request_url", res.Request.URL.String(),
		"status_code", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: response status code does not indicate success: %d", ErrUnreachable, res.StatusCode)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		logger.ErrorContext(ctx, "response body read failed", "error", err)
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrUnreachable, err)
	}

	return resBody, nil
}

package jira

import (
	"fmt"
	"time"
)

// Layout of the "started" field, e.g. 2023-01-15T10:00:00.000+0000
const startedLayout = "2006-01-02T15:04:05.000-0700"

// Target selects the Jira instance and credentials for a call.
type Target struct {
	BaseUrl string
	ApiKey  string
}

type SearchRequest struct {
	Jql        string `json:"jql"`
	MaxResults int    `json:"maxResults"`
}

type SearchResult struct {
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
	Issues     []Issue `json:"issues"`
}

type Issue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

type WorklogPage struct {
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
	Worklogs   []Worklog `json:"worklogs"`
}

type Worklog struct {
	Started          string `json:"started"`
	TimeSpentSeconds int64  `json:"timeSpentSeconds"`
	Comment          string `json:"comment,omitempty"`

	Author struct {
		Name        string `json:"name"`
		AccountId   string `json:"accountId"`
		DisplayName string `json:"displayName"`
	} `json:"author"`
}

func (w Worklog) StartedAt() (time.Time, error) {
	t, err := time.Parse(startedLayout, w.Started)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, w.Started)
	if err != nil {
		return time.Time{}, fmt.Errorf("unexpected worklog start time %q: %w", w.Started, err)
	}

	return t, nil
}

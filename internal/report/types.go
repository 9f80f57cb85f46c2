package report

import "strings"

// Profile of a bot user. ApiKey is the pre-encoded basic auth token.
type User struct {
	Id         int64  `json:"id"`
	Nickname   string `json:"nickname"`
	AccountId  string `json:"accountId"`
	ApiKey     string `json:"apiKey"`
	ProjectKey string `json:"projectKey"`
	IsActive   bool   `json:"isActive"`
}

type Query struct {
	DateFrom Date `json:"dateFrom"`
	// Zero value means no upper bound
	DateTo Date `json:"dateTo"`

	AuthorNickname  string `json:"authorNickname"`
	AuthorAccountId string `json:"authorAccountId"`

	ProjectUrl string `json:"projectUrl"`
	ProjectKey string `json:"projectKey"`
	ApiKey     string `json:"-"`
}

func (q Query) HasAuthor() bool {
	return q.AuthorNickname != "" || q.AuthorAccountId != ""
}

type Issue struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type ReportRow struct {
	Date            string `json:"date"`
	Time            string `json:"logtime"`
	IssueKey        string `json:"key"`
	IssueTitle      string `json:"title"`
	UserDisplayName string `json:"user"`
	UserNickname    string `json:"userid"`
	HoursSpent      string `json:"timespent"`
	Comment         string `json:"comment"`
}

// Compare orders rows by date, user display name and issue key.
func (r ReportRow) Compare(o ReportRow) int {
	if c := strings.Compare(r.Date, o.Date); c != 0 {
		return c
	}
	if c := strings.Compare(r.UserDisplayName, o.UserDisplayName); c != 0 {
		return c
	}
	return strings.Compare(r.IssueKey, o.IssueKey)
}

type Report struct {
	Query Query       `json:"query"`
	Rows  []ReportRow `json:"rows"`
}

// Name is used for exported files, e.g. "worklog-20230101-20230131".
func (r Report) Name() string {
	name := "worklog-" + r.Query.DateFrom.String()
	if !r.Query.DateTo.IsZero() {
		name += "-" + r.Query.DateTo.String()
	}
	return name
}

type Channel struct {
	Rows []ReportRow
	Err  error
}

type Result struct {
	Name string
	Data []byte
}

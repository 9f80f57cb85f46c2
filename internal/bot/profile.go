package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BalanceBalls/worklog-report/internal/config"
	"github.com/BalanceBalls/worklog-report/internal/report"
)

// user input prefixes
const (
	setNicknamePrefix  = "nick:"
	setAccountIdPrefix = "account:"
	setTokenPrefix     = "token:"
	setProjectPrefix   = "project:"
)

// applyProfileInput updates the profile field named by the input prefix and
// returns the name of the updated setting.
func applyProfileInput(user *report.User, userInput string) (string, bool) {
	input := strings.TrimSpace(userInput)

	switch {
	case strings.HasPrefix(input, setNicknamePrefix):
		user.Nickname = strings.TrimSpace(strings.TrimPrefix(input, setNicknamePrefix))
		return "nickname", true
	case strings.HasPrefix(input, setAccountIdPrefix):
		user.AccountId = strings.TrimSpace(strings.TrimPrefix(input, setAccountIdPrefix))
		return "account id", true
	case strings.HasPrefix(input, setTokenPrefix):
		user.ApiKey = strings.TrimSpace(strings.TrimPrefix(input, setTokenPrefix))
		return "API key", true
	case strings.HasPrefix(input, setProjectPrefix):
		user.ProjectKey = strings.TrimSpace(strings.TrimPrefix(input, setProjectPrefix))
		return "project", true
	default:
		return "", false
	}
}

// parseReportArgs reads "<from> [to]".
func parseReportArgs(args string) (report.Date, report.Date, error) {
	fields := strings.Fields(args)

	switch len(fields) {
	case 0:
		return report.Date{}, report.Date{}, errors.New("start date is required")
	case 1, 2:
	default:
		return report.Date{}, report.Date{}, errors.New("too many arguments")
	}

	from, err := report.ParseDate(fields[0])
	if err != nil {
		return report.Date{}, report.Date{}, err
	}

	var to report.Date
	if len(fields) == 2 {
		if to, err = report.ParseDate(fields[1]); err != nil {
			return report.Date{}, report.Date{}, err
		}
		if to.Before(from) {
			return report.Date{}, report.Date{}, errors.New("end date is before start date")
		}
	}

	return from, to, nil
}

func buildQuery(cfg *config.Config, user report.User, from report.Date, to report.Date) report.Query {
	return report.Query{
		DateFrom:        from,
		DateTo:          to,
		AuthorNickname:  user.Nickname,
		AuthorAccountId: user.AccountId,
		ProjectUrl:      cfg.JiraUrl,
		ProjectKey:      user.ProjectKey,
		ApiKey:          user.ApiKey,
	}
}

func formatProfile(user report.User) string {
	token := tokenIsNotSetMsg
	if user.ApiKey != "" {
		token = tokenIsSetMsg
	}

	project := user.ProjectKey
	if project == "" {
		project = "all"
	}

	return fmt.Sprintf(profileCmdTemplate, user.Nickname, user.AccountId, project, token)
}

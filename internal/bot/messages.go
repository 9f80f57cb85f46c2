package bot

const helloMsg = `Available commands:
	/help - how to set up your profile
	/reg - register
	/unreg - remove your profile
	/profile - show your profile
	/report <from> [to] - worklog report, dates as YYYY-MM-DD
`

const helpMsg = `
	Send each setting as a separate message with a prefix and no spaces.

	Jira nickname:
	'nick:alice'

	Jira account id (preferred over the nickname when searching):
	'account:5b10a2844c20165700ede21g'

	Jira API key, the base64 encoded 'email:token' pair:
	'token:YWxpY2VAZXhhbXBsZS5jb206dG9rZW4='

	Jira project key, leave empty for all projects:
	'project:PROJ'

	Report for January 2023:
	/report 2023-01-01 2023-01-31
`

// replies
const (
	userNotRegisteredMsg      = "Error: you are not registered. Use /reg to register"
	userAlreadyRegisteredMsg  = "Error: you are already registered"
	userDataUpdateErrorMsg    = "Error while updating your profile"
	userRegistrationErrorMsg  = "Error while registering"
	reportGenerationFailedMsg = "Error while generating the report: %s"
	fetchUserInfoFailedMsg    = "Error while fetching your profile"
	tokenNotSetErrorMsg       = "Error: Jira API key is not set"
	authorNotSetErrorMsg      = "Error: neither nickname nor account id is set"
	reportArgsErrorMsg        = "Error: %s. Usage: /report 2023-01-01 2023-01-31"
	unknownInputMsg           = "Input was not recognized, see /help"
	userHasBeenRemovedMsg     = "Profile removed"
	userHasBeenRegisteredMsg  = "Registered. Set your nickname and API key, see /help"
	settingHasBeenSavedMsg    = "Saved %s"
	reportInProgressMsg       = "Collecting the report..."
	emptyReportMsg            = "No worklogs found for the period"
	reportFileCaption         = "Worklog report %s"
	tokenIsSetMsg             = "set"
	tokenIsNotSetMsg          = "not set"
)

const profileCmdTemplate = `
------Profile------
Nickname: %s
Account id: %s
Project: %s
API key: %s
`

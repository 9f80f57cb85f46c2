package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	tg "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/BalanceBalls/worklog-report/internal/config"
	"github.com/BalanceBalls/worklog-report/internal/logger"
	"github.com/BalanceBalls/worklog-report/internal/report"
	"github.com/BalanceBalls/worklog-report/internal/storage"
)

type ReportsBot struct {
	Bot tg.BotAPI

	cfg       *config.Config
	log       *slog.Logger
	storage   Storage
	builder   Builder
	generator Generator
}

const empty = ""

// commands
const (
	helpCmd    = "help"
	regCmd     = "reg"
	unregCmd   = "unreg"
	profileCmd = "profile"
	reportCmd  = "report"
	startCmd   = "start"
)

func New(cfg *config.Config, log *slog.Logger, storage Storage, builder Builder, generator Generator) (*ReportsBot, error) {
	bot, err := tg.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("could not authorize telegram bot: %w", err)
	}

	return &ReportsBot{
		Bot: *bot,

		cfg:       cfg,
		log:       log,
		storage:   storage,
		builder:   builder,
		generator: generator,
	}, nil
}

func (b *ReportsBot) Serve(ctx context.Context) {
	b.log.InfoContext(ctx, "authorized on account", "username", b.Bot.Self.UserName)

	updateConfig := tg.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.Bot.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.Bot.StopReceivingUpdates()
			return
		case update := <-updates:
			// ignore any non-Message updates
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *ReportsBot) handleMessage(ctx context.Context, msg *tg.Message) {
	userId := msg.From.ID
	chatId := msg.Chat.ID
	ctx = logger.AddToContext(ctx, b.log.With("user_id", userId))
	logger := logger.GetFromContext(ctx)

	// Handling user input
	if !msg.IsCommand() {
		dbUser, err := b.storage.User(ctx, userId)
		if err != nil {
			logger.ErrorContext(ctx, "could not load user", "error", err)
			if errors.Is(err, storage.ErrUserNotFound) {
				b.sendText(ctx, userNotRegisteredMsg, chatId)
			} else {
				b.sendText(ctx, fetchUserInfoFailedMsg, chatId)
			}
			return
		}

		b.updateProfile(ctx, msg.Text, chatId, dbUser)
		return
	}

	switch msg.Command() {
	case startCmd:
		b.sendText(ctx, helloMsg, chatId)
	case helpCmd:
		b.sendText(ctx, helpMsg, chatId)
	case regCmd:
		b.handleRegistration(ctx, userId, chatId)
	case unregCmd:
		b.handleUnregistration(ctx, userId, chatId)
	case profileCmd:
		b.handleProfile(ctx, userId, chatId)
	case reportCmd:
		b.handleReport(ctx, userId, chatId, msg.CommandArguments())
	default:
		logger.WarnContext(ctx, "command was not recognized", "command", msg.Command())
	}
}

func (b *ReportsBot) handleRegistration(ctx context.Context, userId int64, chatId int64) {
	if b.storage.UserExists(ctx, userId) {
		b.sendText(ctx, userAlreadyRegisteredMsg, chatId)
		return
	}

	newUser := report.User{
		Id:         userId,
		ProjectKey: b.cfg.JiraProjectKey,
		IsActive:   true,
	}

	if err := b.storage.AddUser(ctx, newUser); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to add new user", "error", err)
		b.sendText(ctx, userRegistrationErrorMsg, chatId)
		return
	}

	b.sendText(ctx, userHasBeenRegisteredMsg, chatId)
}

func (b *ReportsBot) handleUnregistration(ctx context.Context, userId int64, chatId int64) {
	if !b.storage.UserExists(ctx, userId) {
		b.sendText(ctx, userNotRegisteredMsg, chatId)
		return
	}

	if err := b.storage.RemoveUser(ctx, userId); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to remove user", "error", err)
		b.sendText(ctx, userDataUpdateErrorMsg, chatId)
		return
	}

	b.sendText(ctx, userHasBeenRemovedMsg, chatId)
}

func (b *ReportsBot) handleProfile(ctx context.Context, userId int64, chatId int64) {
	user, ok := b.loadUser(ctx, userId, chatId)
	if !ok {
		return
	}

	b.sendText(ctx, formatProfile(user), chatId)
}

func (b *ReportsBot) updateProfile(ctx context.Context, userInput string, chatId int64, dbUser report.User) {
	setting, ok := applyProfileInput(&dbUser, userInput)
	if !ok {
		logger.GetFromContext(ctx).InfoContext(ctx, "user input was not recognized")
		b.sendText(ctx, unknownInputMsg, chatId)
		return
	}

	if err := b.storage.UpdateUser(ctx, dbUser); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "failed to update user", "error", err)
		b.sendText(ctx, userDataUpdateErrorMsg, chatId)
		return
	}

	b.sendText(ctx, fmt.Sprintf(settingHasBeenSavedMsg, setting), chatId)
}

func (b *ReportsBot) handleReport(ctx context.Context, userId int64, chatId int64, args string) {
	logger := logger.GetFromContext(ctx)

	user, ok := b.loadUser(ctx, userId, chatId)
	if !ok {
		return
	}

	if user.ApiKey == "" {
		b.sendText(ctx, tokenNotSetErrorMsg, chatId)
		return
	}
	if user.Nickname == "" && user.AccountId == "" {
		b.sendText(ctx, authorNotSetErrorMsg, chatId)
		return
	}

	from, to, err := parseReportArgs(args)
	if err != nil {
		b.sendText(ctx, fmt.Sprintf(reportArgsErrorMsg, err), chatId)
		return
	}

	q := buildQuery(b.cfg, user, from, to)
	b.sendText(ctx, reportInProgressMsg, chatId)

	ctx, cancel := context.WithTimeout(ctx, b.cfg.CommandsDeadline())
	defer cancel()

	respch := make(chan report.Channel, 1)
	go func() {
		rows, err := b.builder.Build(ctx, q)
		respch <- report.Channel{Rows: rows, Err: err}
	}()

	var rows []report.ReportRow
	select {
	case <-ctx.Done():
		logger.ErrorContext(ctx, "report timed out", "error", ctx.Err())
		b.sendText(ctx, fmt.Sprintf(reportGenerationFailedMsg, ctx.Err()), chatId)
		return
	case resp := <-respch:
		if resp.Err != nil {
			logger.ErrorContext(ctx, "report failed", "error", resp.Err)
			b.sendText(ctx, fmt.Sprintf(reportGenerationFailedMsg, resp.Err), chatId)
			return
		}
		rows = resp.Rows
	}

	if len(rows) == 0 {
		b.sendText(ctx, emptyReportMsg, chatId)
		return
	}

	result, err := b.generator.Generate(report.Report{Query: q, Rows: rows})
	if err != nil {
		logger.ErrorContext(ctx, "report rendering failed", "error", err)
		b.sendText(ctx, fmt.Sprintf(reportGenerationFailedMsg, err), chatId)
		return
	}

	file := tg.FileBytes{
		Name:  result.Name,
		Bytes: result.Data,
	}

	doc := tg.NewDocument(chatId, file)
	doc.Caption = fmt.Sprintf(reportFileCaption, strings.TrimSuffix(result.Name, filepath.Ext(result.Name)))
	if _, err := b.Bot.Send(doc); err != nil {
		logger.ErrorContext(ctx, "could not send report", "error", err)
	}
}

func (b *ReportsBot) loadUser(ctx context.Context, userId int64, chatId int64) (report.User, bool) {
	user, err := b.storage.User(ctx, userId)
	if err == nil {
		return user, true
	}

	logger.GetFromContext(ctx).ErrorContext(ctx, "could not load user", "error", err)
	if errors.Is(err, storage.ErrUserNotFound) {
		b.sendText(ctx, userNotRegisteredMsg, chatId)
	} else {
		b.sendText(ctx, fetchUserInfoFailedMsg, chatId)
	}

	return report.User{}, false
}

func (b *ReportsBot) sendText(ctx context.Context, text string, chatId int64) {
	message := tg.NewMessage(chatId, empty)
	message.Text = text

	if _, err := b.Bot.Send(message); err != nil {
		logger.GetFromContext(ctx).ErrorContext(ctx, "could not send message", "error", err)
	}
}

package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/command"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/diegoclair/forecast-bot/internal/domain/locale"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type TelegramHandler struct {
	profiles contract.ProfileService
	sink     contract.NotificationSink
	reporter contract.OperatorReporter
	log      *zap.Logger
}

func New(profiles contract.ProfileService, sink contract.NotificationSink, reporter contract.OperatorReporter, log *zap.Logger) *TelegramHandler {
	return &TelegramHandler{
		profiles: profiles,
		sink:     sink,
		reporter: reporter,
		log:      log.Named("handler"),
	}
}

// request identifies the message a handler answers to
type request struct {
	chatID    int64
	messageID int
	sender    entity.Sender
}

// BotCommands returns the command menu in the form accepted by setMyCommands
func BotCommands() tgbotapi.SetMyCommandsConfig {
	menu := command.Menu()
	commands := make([]tgbotapi.BotCommand, 0, len(menu))
	for _, d := range menu {
		commands = append(commands, tgbotapi.BotCommand{Command: d.Command, Description: d.Description})
	}
	return tgbotapi.NewSetMyCommands(commands...)
}

// HandleUpdate routes a single update to the command or callback handlers
func (h *TelegramHandler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		h.handleMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		h.handleCallback(ctx, upd.CallbackQuery)
	}
}

func (h *TelegramHandler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil || !msg.IsCommand() {
		return
	}

	cmd, err := command.ParseCommand(msg.Command(), msg.CommandArguments())
	if err != nil {
		h.log.Debug("ignoring command", zap.String("command", msg.Command()))
		return
	}

	req := request{
		chatID:    msg.Chat.ID,
		messageID: msg.MessageID,
		sender:    senderOf(msg.From, msg.Chat.ID),
	}
	log := h.log.With(zap.String("command", string(cmd.Type)), zap.Int64("user", req.sender.ID))

	if cmd.Type == command.CmdStop {
		if err := h.profiles.DeleteAccount(ctx, userKey(req.sender)); err != nil {
			h.fail(ctx, req, domain.DefaultLanguage, err, "/stop")
		}
		return
	}

	account, err := h.ensureAccount(ctx, req)
	if err != nil {
		h.fail(ctx, req, domain.DefaultLanguage, err, "account lookup for /"+cmd.Raw)
		return
	}

	if err := h.handleCommand(ctx, req, account, cmd); err != nil {
		log.Error("command failed", zap.Error(err))
		h.fail(ctx, req, account.User.Language, err, fmt.Sprintf("/%s %s", cmd.Raw, cmd.Arg))
	}
}

func (h *TelegramHandler) handleCommand(ctx context.Context, req request, account *entity.Account, cmd *command.Command) error {
	switch cmd.Type {
	case command.CmdStart:
		return h.reply(ctx, req, locale.For(account.User.Language).Welcome())
	case command.CmdHelp:
		return h.reply(ctx, req, locale.For(account.User.Language).Help())
	case command.CmdLocation:
		return h.handleLocation(ctx, req, account, cmd.Arg)
	case command.CmdTime:
		return h.handleTime(ctx, req, account, cmd.Arg)
	case command.CmdLanguage:
		return h.handleLanguage(ctx, req, account, cmd.Arg)
	case command.CmdCurrent:
		return h.handleCurrent(ctx, req, account, cmd.Arg)
	case command.CmdInfo:
		return h.handleInfo(ctx, req, account)
	case command.CmdList:
		return h.handleList(ctx, req, account)
	case command.CmdNew:
		return h.handleNew(ctx, req, account, cmd.Arg)
	case command.CmdRename:
		return h.handleRename(ctx, req, account, cmd.Arg)
	case command.CmdChange:
		return h.handleChange(ctx, req, account, cmd.Arg)
	case command.CmdDelete:
		return h.handleDelete(ctx, req, account, cmd.Arg)
	default:
		return nil
	}
}

// ensureAccount loads the sender's account and registers it on first contact
func (h *TelegramHandler) ensureAccount(ctx context.Context, req request) (*entity.Account, error) {
	account, err := h.profiles.GetAccount(ctx, userKey(req.sender))
	if err != nil {
		return nil, err
	}
	if account != nil {
		return account, nil
	}

	cat := locale.For(domain.DefaultLanguage)
	notice, err := h.sink.Send(ctx, req.chatID, cat.AccountNotFound()+". \n"+cat.AccountCreating(), entity.SendOptions{})
	if err != nil {
		return nil, err
	}

	account, err = h.profiles.CreateAccount(ctx, req.sender)
	if err != nil {
		return nil, err
	}

	if err := h.sink.EditText(ctx, notice.ChatID, notice.MessageID, notice.Text+" "+cat.Done()+"."); err != nil {
		h.log.Warn("failed to confirm account creation", zap.Error(err))
	}

	return account, nil
}

func (h *TelegramHandler) handleLocation(ctx context.Context, req request, account *entity.Account, query string) error {
	cat := locale.For(account.User.Language)

	if query == "" {
		if account.Profile.HasLocation() {
			return h.reply(ctx, req, cat.CurrentLocation(account.Profile.Location))
		}
		return h.reply(ctx, req, cat.NoLocationSet())
	}

	location, err := h.profiles.SetLocation(ctx, account, query)
	if err != nil {
		if pe, ok := domain.AsProviderError(err); ok && domain.IsLocationNotFound(err) {
			return h.reply(ctx, req, pe.Message)
		}
		return err
	}

	return h.reply(ctx, req, cat.NewLocation(location.Name))
}

func (h *TelegramHandler) handleTime(ctx context.Context, req request, account *entity.Account, clock string) error {
	cat := locale.For(account.User.Language)

	if clock == "" {
		current, usedDefault, err := h.profiles.ShowTime(ctx, account)
		if errors.Is(err, domain.ErrNoTime) {
			return h.reply(ctx, req, cat.NoTimeSet())
		}
		if err != nil {
			return err
		}
		if usedDefault {
			if err := h.reply(ctx, req, cat.NoTimeZone()); err != nil {
				return err
			}
		}
		return h.reply(ctx, req, cat.CurrentTime(current))
	}

	if account.Profile.TimezoneID == "" {
		if err := h.reply(ctx, req, cat.NoTimeZone()); err != nil {
			return err
		}
	}

	_, err := h.profiles.SetTime(ctx, account, clock)
	if errors.Is(err, domain.ErrInvalidClock) || errors.Is(err, domain.ErrOutOfRange) {
		return h.reply(ctx, req, cat.InvalidTime())
	}
	if err != nil {
		return err
	}

	return h.reply(ctx, req, cat.NewTime())
}

func (h *TelegramHandler) handleLanguage(ctx context.Context, req request, account *entity.Account, lang string) error {
	cat := locale.For(account.User.Language)

	if lang == "" {
		return h.reply(ctx, req, cat.NoLanguageIndicated())
	}

	err := h.profiles.SetLanguage(ctx, account, lang)
	if errors.Is(err, domain.ErrUnsupportedLanguage) {
		return h.reply(ctx, req, cat.LanguageNotRecognized(domain.Languages))
	}
	if err != nil {
		return err
	}

	return h.reply(ctx, req, locale.For(account.User.Language).LanguageSet(account.User.Language))
}

func (h *TelegramHandler) handleCurrent(ctx context.Context, req request, account *entity.Account, query string) error {
	cat := locale.For(account.User.Language)

	weather, err := h.profiles.CurrentWeather(ctx, account, query)
	if errors.Is(err, domain.ErrNoLocation) {
		return h.reply(ctx, req, cat.NoLocationIndicatedAndNoDefault())
	}
	if pe, ok := domain.AsProviderError(err); ok && domain.IsLocationNotFound(err) {
		return h.reply(ctx, req, pe.Message)
	}
	if err != nil {
		return err
	}

	return h.reply(ctx, req, cat.Current(weather.Current))
}

func (h *TelegramHandler) handleInfo(ctx context.Context, req request, account *entity.Account) error {
	cat := locale.For(account.User.Language)

	info, err := h.profiles.Info(ctx, account)
	if err != nil {
		return err
	}

	if info.UsedDefaultZone {
		if err := h.reply(ctx, req, cat.NoTimeZone()); err != nil {
			return err
		}
	}

	return h.reply(ctx, req, cat.Info(info.Location, info.Time))
}

func (h *TelegramHandler) handleList(ctx context.Context, req request, account *entity.Account) error {
	return h.replyWithProfiles(ctx, req, account, locale.For(account.User.Language).ProfilesList(), nil)
}

func (h *TelegramHandler) handleNew(ctx context.Context, req request, account *entity.Account, name string) error {
	cat := locale.For(account.User.Language)

	if name == "" {
		return h.reply(ctx, req, cat.NoNameForNewProfile())
	}

	profile, err := h.profiles.NewProfile(ctx, account, name)
	if text, ok := profileNameError(cat, err); ok {
		return h.reply(ctx, req, text)
	}
	if err != nil {
		return err
	}

	return h.reply(ctx, req, cat.NewProfile(profile.Name))
}

func (h *TelegramHandler) handleRename(ctx context.Context, req request, account *entity.Account, name string) error {
	cat := locale.For(account.User.Language)

	if name == "" {
		return h.reply(ctx, req, cat.NoNameForRename())
	}

	err := h.profiles.RenameProfile(ctx, account, name)
	if text, ok := profileNameError(cat, err); ok {
		return h.reply(ctx, req, text)
	}
	if err != nil {
		return err
	}

	return h.reply(ctx, req, cat.RenamedProfile(account.Profile.Name))
}

func (h *TelegramHandler) handleChange(ctx context.Context, req request, account *entity.Account, name string) error {
	cat := locale.For(account.User.Language)

	if name == "" {
		return h.replyWithProfiles(ctx, req, account, cat.ChooseProfileForChange(), command.ChangeData)
	}

	profile, err := h.profiles.ChangeDefault(ctx, account, name)
	if errors.Is(err, domain.ErrProfileNotFound) {
		return h.reply(ctx, req, cat.NoProfile())
	}
	if err != nil {
		return err
	}

	return h.reply(ctx, req, cat.ChangedProfile(profile.Name))
}

func (h *TelegramHandler) handleDelete(ctx context.Context, req request, account *entity.Account, name string) error {
	cat := locale.For(account.User.Language)

	if name == "" {
		return h.replyWithProfiles(ctx, req, account, cat.ChooseProfileForDelete(), command.DeleteData)
	}

	profile, err := h.profiles.DeleteProfile(ctx, account, name)
	switch {
	case errors.Is(err, domain.ErrDefaultProfile):
		return h.reply(ctx, req, cat.CannotDeleteDefaultProfile())
	case errors.Is(err, domain.ErrProfileNotFound):
		return h.reply(ctx, req, cat.NoProfile())
	case err != nil:
		return err
	}

	return h.reply(ctx, req, cat.DeletedProfile(profile.Name))
}

func (h *TelegramHandler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil {
		return
	}

	req := request{chatID: cb.From.ID}
	if cb.Message != nil && cb.Message.Chat != nil {
		req.chatID = cb.Message.Chat.ID
		req.messageID = cb.Message.MessageID
	}
	req.sender = senderOf(cb.From, req.chatID)

	action, ok := command.ParseCallback(cb.Data)
	if !ok {
		h.answer(ctx, cb.ID, "")
		return
	}

	account, err := h.ensureAccount(ctx, req)
	if err != nil {
		h.fail(ctx, req, domain.DefaultLanguage, err, "account lookup for callback "+cb.Data)
		return
	}
	cat := locale.For(account.User.Language)

	var reply string
	switch action.Type {
	case command.CallbackChange:
		var profile *entity.Profile
		profile, err = h.profiles.ChangeDefault(ctx, account, action.ProfileName)
		if err == nil {
			reply = cat.ChangedProfile(profile.Name)
		}
	case command.CallbackDelete:
		var profile *entity.Profile
		profile, err = h.profiles.DeleteProfile(ctx, account, action.ProfileName)
		if errors.Is(err, domain.ErrDefaultProfile) {
			h.answer(ctx, cb.ID, cat.CannotDeleteDefaultProfile())
			return
		}
		if err == nil {
			reply = cat.DeletedProfile(profile.Name)
		}
	}

	if errors.Is(err, domain.ErrProfileNotFound) {
		h.answer(ctx, cb.ID, cat.NoProfile())
		return
	}
	if err != nil {
		h.answer(ctx, cb.ID, "")
		h.fail(ctx, req, account.User.Language, err, "callback "+cb.Data)
		return
	}

	h.answer(ctx, cb.ID, cat.Done())
	if err := h.reply(ctx, req, reply); err != nil {
		h.log.Error("failed to confirm callback", zap.String("data", cb.Data), zap.Error(err))
	}
}

// replyWithProfiles lists the owner's profiles as inline buttons. dataOf builds the
// callback data of each button; nil leaves it equal to the button text.
func (h *TelegramHandler) replyWithProfiles(ctx context.Context, req request, account *entity.Account, prompt string, dataOf func(string) string) error {
	cat := locale.For(account.User.Language)

	profiles, err := h.profiles.ListProfiles(ctx, account)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		return h.reply(ctx, req, cat.NoProfiles())
	}

	buttons := make([]entity.Button, 0, len(profiles))
	for _, p := range profiles {
		b := entity.Button{Text: p.Name}
		if p.Key == account.User.DefaultProfileKey {
			b.Text += cat.DefaultMark()
		}
		if dataOf != nil {
			b.Data = dataOf(p.Name)
		}
		buttons = append(buttons, b)
	}

	_, err = h.sink.Send(ctx, req.chatID, prompt, entity.SendOptions{ReplyTo: req.messageID, Buttons: buttons})
	return err
}

func (h *TelegramHandler) reply(ctx context.Context, req request, text string) error {
	_, err := h.sink.Send(ctx, req.chatID, text, entity.SendOptions{ReplyTo: req.messageID})
	return err
}

func (h *TelegramHandler) answer(ctx context.Context, interactionID, text string) {
	if err := h.sink.AnswerInteraction(ctx, interactionID, text); err != nil {
		h.log.Warn("failed to answer callback", zap.Error(err))
	}
}

// fail reports an unexpected fault to the operator and apologizes to the user
func (h *TelegramHandler) fail(ctx context.Context, req request, lang string, err error, details string) {
	h.log.Error("request failed", zap.Int64("chat_id", req.chatID), zap.String("details", details), zap.Error(err))
	h.reporter.Report(ctx, err, fmt.Sprintf("%s (user %d, @%s)", details, req.sender.ID, req.sender.Username))

	if sendErr := h.reply(ctx, req, locale.For(lang).EncounteredError()); sendErr != nil {
		h.log.Error("failed to send error reply", zap.Error(sendErr))
	}
}

func profileNameError(cat locale.Catalog, err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrProfileExists):
		return cat.ProfileNameExists(), true
	case errors.Is(err, domain.ErrInvalidProfileName):
		return cat.InvalidProfileName(), true
	default:
		return "", false
	}
}

func senderOf(u *tgbotapi.User, chatID int64) entity.Sender {
	return entity.Sender{
		ID:        u.ID,
		ChatID:    chatID,
		Username:  u.UserName,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func userKey(s entity.Sender) string {
	return strconv.FormatInt(s.ID, 10)
}

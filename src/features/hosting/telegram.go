package hosting

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/contre95/zenify/src/features/config"
	"github.com/contre95/zenify/src/features/playlist"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramCommandHandler interface that each feature implements
type TelegramCommandHandler interface {
	HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error
	GetCommands() map[string]string                                             // Returns command -> description mapping
	HandleCallback(bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery) bool // Handle feature-specific callbacks
}

// TelegramBot handles Telegram bot operations
type TelegramBot struct {
	bot      *tgbotapi.BotAPI
	config   *config.Manager
	handlers map[string]TelegramCommandHandler
	commands map[string]string // command -> feature
	updates  tgbotapi.UpdatesChannel
	stopChan chan struct{}
}

// NewTelegramBot creates a new Telegram bot instance
func NewTelegramBot(cfg *config.Manager, sessions *playlist.Sessions) (*TelegramBot, error) {
	telegramConfig := cfg.Get().Telegram

	if !telegramConfig.Enabled {
		return nil, fmt.Errorf("telegram bot is disabled in configuration")
	}

	if telegramConfig.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}

	bot, err := tgbotapi.NewBotAPI(telegramConfig.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	slog.Info("Telegram bot initialized", "username", bot.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 30

	telegramBot := &TelegramBot{
		bot:      bot,
		config:   cfg,
		handlers: make(map[string]TelegramCommandHandler),
		commands: make(map[string]string),
		updates:  bot.GetUpdatesChan(updateConfig),
		stopChan: make(chan struct{}),
	}

	telegramBot.RegisterHandler("playlist", playlist.NewTelegramHandler(sessions))

	return telegramBot, nil
}

// RegisterHandler registers a feature's command handler and the commands it serves
func (t *TelegramBot) RegisterHandler(feature string, handler TelegramCommandHandler) {
	t.handlers[feature] = handler
	for command := range handler.GetCommands() {
		t.commands[command] = feature
	}
	slog.Debug("Registered Telegram handler", "feature", feature)
}

// Start begins listening for Telegram updates
func (t *TelegramBot) Start() {
	slog.Info("Starting Telegram bot listener")

	for {
		select {
		case update := <-t.updates:
			if update.Message != nil {
				go t.handleMessage(update)
			}
			if update.CallbackQuery != nil {
				go t.handleCallbackQuery(update)
			}
		case <-t.stopChan:
			slog.Info("Stopping Telegram bot listener")
			t.bot.StopReceivingUpdates()
			return
		}
	}
}

// Stop gracefully stops the bot
func (t *TelegramBot) Stop() {
	close(t.stopChan)
}

// displayName returns the username, or the full name for users without one.
func displayName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	if user.UserName != "" {
		return user.UserName
	}
	name := user.FirstName
	if user.LastName != "" {
		name += " " + user.LastName
	}
	return name
}

// isAllowed reports whether the user is in the allow list. An empty list allows nobody.
func isAllowed(allowedUsers []string, user *tgbotapi.User) bool {
	return slices.Contains(allowedUsers, displayName(user))
}

// handleMessage processes incoming messages
func (t *TelegramBot) handleMessage(update tgbotapi.Update) {
	message := update.Message
	chatID := message.Chat.ID

	allowedUsers := t.config.Get().Telegram.AllowedUsers
	if len(allowedUsers) == 0 {
		slog.Warn("No allowed users configured", "chat_id", chatID)
		t.sendMessage(chatID, "❌ Access denied: No users configured. Please add users to the config.")
		return
	}
	if !isAllowed(allowedUsers, message.From) {
		slog.Warn("Unauthorized user", "username", displayName(message.From), "chat_id", chatID)
		t.sendMessage(chatID, "Unknown user, please add your user to the config")
		return
	}

	if message.IsCommand() {
		t.handleCommand(update)
		return
	}

	t.sendMessage(chatID, "🤖 Send /help to see available commands")
}

// handleCommand processes bot commands
func (t *TelegramBot) handleCommand(update tgbotapi.Update) {
	message := update.Message
	chatID := message.Chat.ID
	command := message.Command()
	args := message.CommandArguments()

	slog.Debug("Processing command", "command", command, "args", args, "chat_id", chatID)

	switch command {
	case "help", "start", "menu":
		t.sendMessage(chatID, t.helpText())
	default:
		if err := t.routeCommand(command, args, chatID); err != nil {
			slog.Error("Failed to handle command", "command", command, "error", err)
			t.sendMessage(chatID, "❌ Failed to process command")
		}
	}
}

// routeCommand routes commands to the appropriate feature handler
func (t *TelegramBot) routeCommand(command, args string, chatID int64) error {
	feature, exists := t.commands[command]
	if !exists {
		t.sendMessage(chatID, "❌ Unknown command. Send /help to see available commands.")
		return nil
	}
	return t.handlers[feature].HandleCommand(t.bot, chatID, command, args)
}

// helpText lists every registered command.
func (t *TelegramBot) helpText() string {
	var b strings.Builder
	b.WriteString("🎧 Zenify\nDiscover music that matches your soul\n")
	for _, command := range slices.Sorted(maps.Keys(t.commands)) {
		description := t.handlers[t.commands[command]].GetCommands()[command]
		fmt.Fprintf(&b, "\n/%s - %s", command, description)
	}
	return b.String()
}

// sendMessage sends a message to the specified chat
func (t *TelegramBot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := t.bot.Send(msg)
	if err != nil {
		slog.Error("Failed to send message", "error", err, "chat_id", chatID)
	}
}

// handleCallbackQuery handles callback queries from inline keyboards
func (t *TelegramBot) handleCallbackQuery(update tgbotapi.Update) {
	callback := update.CallbackQuery

	if !isAllowed(t.config.Get().Telegram.AllowedUsers, callback.From) {
		slog.Warn("Unauthorized callback", "username", displayName(callback.From))
		return
	}

	for _, handler := range t.handlers {
		if handler.HandleCallback(t.bot, callback) {
			break
		}
	}

	// Answer callback to remove loading state
	if _, err := t.bot.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		slog.Debug("Failed to answer callback", "error", err)
	}
}

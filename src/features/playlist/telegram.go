package playlist

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/contre95/zenify/src/music"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	moodCallbackPrefix = "playlist_mood_"
	likeCallbackPrefix = "playlist_like_"
)

// TelegramHandler handles Telegram commands for the playlist feature.
// Every chat gets its own session.
type TelegramHandler struct {
	sessions *Sessions
}

// NewTelegramHandler creates a new Telegram handler for the playlist feature
func NewTelegramHandler(sessions *Sessions) *TelegramHandler {
	return &TelegramHandler{sessions: sessions}
}

// ChatNamespace returns the storage namespace of a Telegram chat.
func ChatNamespace(chatID int64) string {
	return "tg-" + strconv.FormatInt(chatID, 10)
}

// HandleCommand processes playlist-related Telegram commands
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	msg, err := h.Reply(context.Background(), chatID, command, args)
	if err != nil {
		if _, sendErr := bot.Send(tgbotapi.NewMessage(chatID, "❌ "+err.Error())); sendErr != nil {
			slog.Error("Failed to send playlist error", "error", sendErr, "chat_id", chatID)
		}
		return nil
	}
	_, err = bot.Send(msg)
	return err
}

// Reply runs a command against the chat's session and builds the answer.
func (h *TelegramHandler) Reply(ctx context.Context, chatID int64, command, args string) (tgbotapi.MessageConfig, error) {
	session := h.sessions.Get(ChatNamespace(chatID))
	args = strings.TrimSpace(args)

	switch command {
	case "moods":
		return moodsMessage(chatID), nil
	case "mood":
		if args == "" {
			return moodsMessage(chatID), nil
		}
		return playlistMessage(chatID, session.SelectMood(ctx, strings.ToLower(args))), nil
	case "like":
		n, err := strconv.Atoi(args)
		if err != nil {
			return tgbotapi.MessageConfig{}, fmt.Errorf("usage: /like <number>")
		}
		if _, err := h.toggleNth(session, n); err != nil {
			return tgbotapi.MessageConfig{}, err
		}
		return playlistMessage(chatID, session.View()), nil
	case "liked":
		session.ToggleShowLikedOnly()
		return playlistMessage(chatID, session.View()), nil
	case "theme":
		current := session.ToggleTheme()
		return tgbotapi.NewMessage(chatID, fmt.Sprintf("🎨 Theme is now %s", current)), nil
	}
	return tgbotapi.MessageConfig{}, fmt.Errorf("unknown playlist command, use /moods, /mood, /like, /liked or /theme")
}

// toggleNth toggles the like state of the nth (1-based) displayed song.
func (h *TelegramHandler) toggleNth(session *Session, n int) (bool, error) {
	songs := session.View().Songs
	if n < 1 || n > len(songs) {
		return false, fmt.Errorf("no song number %d in the current playlist", n)
	}
	return session.ToggleLike(songs[n-1].Key), nil
}

// GetCommands returns the available commands for this handler
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"moods": "Pick a mood",
		"mood":  "Show a playlist for a mood (/mood happy)",
		"like":  "Like or unlike a song of the playlist (/like 2)",
		"liked": "Switch between all songs and liked songs",
		"theme": "Switch between light and dark",
	}
}

// HandleCallback handles the mood and like buttons.
func (h *TelegramHandler) HandleCallback(bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery) bool {
	if callback.Message == nil {
		return false
	}
	chatID := callback.Message.Chat.ID
	msg, handled := h.Callback(context.Background(), chatID, callback.Data)
	if !handled {
		return false
	}
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Failed to send playlist", "error", err, "chat_id", chatID)
	}
	return true
}

// Callback resolves button data into the chat's updated playlist.
func (h *TelegramHandler) Callback(ctx context.Context, chatID int64, data string) (tgbotapi.MessageConfig, bool) {
	session := h.sessions.Get(ChatNamespace(chatID))
	switch {
	case strings.HasPrefix(data, moodCallbackPrefix):
		mood := strings.TrimPrefix(data, moodCallbackPrefix)
		return playlistMessage(chatID, session.SelectMood(ctx, mood)), true
	case strings.HasPrefix(data, likeCallbackPrefix):
		n, err := strconv.Atoi(strings.TrimPrefix(data, likeCallbackPrefix))
		if err != nil {
			return tgbotapi.NewMessage(chatID, "❌ Invalid song"), true
		}
		if _, err := h.toggleNth(session, n); err != nil {
			return tgbotapi.NewMessage(chatID, "❌ "+err.Error()), true
		}
		return playlistMessage(chatID, session.View()), true
	}
	return tgbotapi.MessageConfig{}, false
}

func moodsMessage(chatID int64) tgbotapi.MessageConfig {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, mood := range music.Moods {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(mood, moodCallbackPrefix+mood))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	msg := tgbotapi.NewMessage(chatID, "🎧 "+NoMoodMessage)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	return msg
}

func playlistMessage(chatID int64, view View) tgbotapi.MessageConfig {
	var b strings.Builder
	if view.Mood != "" {
		fmt.Fprintf(&b, "🎵 %s\n", view.Mood)
	}
	if view.ShowLikedOnly {
		fmt.Fprintf(&b, "❤️ Liked songs (%d)\n", view.LikedCount)
	}
	if view.Error != "" {
		fmt.Fprintf(&b, "⚠️ %s\n", view.Error)
	}
	if view.EmptyMessage != "" {
		b.WriteString(view.EmptyMessage)
		return tgbotapi.NewMessage(chatID, b.String())
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, song := range view.Songs {
		heart := "🤍"
		if song.Liked {
			heart = "❤️"
		}
		fmt.Fprintf(&b, "\n%d. %s %s - %s", i+1, heart, song.Title, song.Artist)
		if song.Year != "" {
			fmt.Fprintf(&b, " (%s)", song.Year)
		}
		// Inline keyboards stay usable for the first songs only
		if i < 10 {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%s %d", heart, i+1), likeCallbackPrefix+strconv.Itoa(i+1)),
			))
		}
	}
	msg := tgbotapi.NewMessage(chatID, b.String())
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	return msg
}

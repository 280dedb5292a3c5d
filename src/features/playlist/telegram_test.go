package playlist

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/contre95/zenify/src/infra/storage"
	"github.com/contre95/zenify/src/music"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newTestTelegramHandler() *TelegramHandler {
	songs := []music.Song{{Title: "Sunny Days", Artist: "The Vibes", Year: "2023"}}
	fetcher := &mockFetcher{songs: map[string][]music.Song{"happy": songs, "chill": songs}}
	loader := NewLoader(fetcher, DefaultSampleSize, nil)
	return NewTelegramHandler(NewSessions(loader, storage.NewInMemoryStore(), nil))
}

func TestTelegram_MoodsKeyboard(t *testing.T) {
	h := newTestTelegramHandler()
	msg, err := h.Reply(context.Background(), 7, "moods", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	keyboard, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	if !ok {
		t.Fatalf("expected inline keyboard, got %T", msg.ReplyMarkup)
	}
	buttons := 0
	for _, row := range keyboard.InlineKeyboard {
		buttons += len(row)
	}
	if buttons != len(music.Moods) {
		t.Errorf("expected %d mood buttons, got %d", len(music.Moods), buttons)
	}
}

func TestTelegram_MoodAndLike(t *testing.T) {
	h := newTestTelegramHandler()
	ctx := context.Background()

	msg, err := h.Reply(ctx, 7, "mood", "Happy")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(msg.Text, "1. 🤍 Sunny Days - The Vibes (2023)") {
		t.Errorf("unexpected playlist text %q", msg.Text)
	}

	msg, err = h.Reply(ctx, 7, "like", "1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(msg.Text, "❤️ Sunny Days") {
		t.Errorf("expected song to be liked, got %q", msg.Text)
	}

	// Other chats keep their own likes
	if h.sessions.Get(ChatNamespace(8)).View().LikedCount != 0 {
		t.Error("expected chat 8 to have no likes")
	}
}

func TestTelegram_LikeOutOfRange(t *testing.T) {
	h := newTestTelegramHandler()
	if _, err := h.Reply(context.Background(), 7, "like", "3"); err == nil {
		t.Error("expected error liking a song that is not shown")
	}
	if _, err := h.Reply(context.Background(), 7, "like", "abc"); err == nil {
		t.Error("expected usage error")
	}
}

func TestTelegram_LikedOnlyEmpty(t *testing.T) {
	h := newTestTelegramHandler()
	msg, err := h.Reply(context.Background(), 7, "liked", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(msg.Text, NoLikedSongsMessage) {
		t.Errorf("expected empty liked message, got %q", msg.Text)
	}
}

func TestTelegram_Callbacks(t *testing.T) {
	h := newTestTelegramHandler()
	ctx := context.Background()

	if _, handled := h.Callback(ctx, 7, "menu_back"); handled {
		t.Error("expected foreign callback to be ignored")
	}
	msg, handled := h.Callback(ctx, 7, moodCallbackPrefix+"chill")
	if !handled || !strings.Contains(msg.Text, "chill") {
		t.Fatalf("expected chill playlist, got %q", msg.Text)
	}
	msg, handled = h.Callback(ctx, 7, likeCallbackPrefix+"1")
	if !handled || !strings.Contains(msg.Text, "❤️ Sunny Days") {
		t.Errorf("expected liked song, got %q", msg.Text)
	}
}

func TestTelegram_Theme(t *testing.T) {
	h := newTestTelegramHandler()
	msg, err := h.Reply(context.Background(), 7, "theme", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if msg.Text != "🎨 Theme is now dark" {
		t.Errorf("unexpected reply %q", msg.Text)
	}
}

type failingTelegramClient struct {
	paths []string
}

func (f *failingTelegramClient) Do(req *http.Request) (*http.Response, error) {
	f.paths = append(f.paths, req.URL.Path)
	return nil, errors.New("telegram unreachable")
}

func TestTelegram_HandleCommandSurvivesSendFailure(t *testing.T) {
	client := &failingTelegramClient{}
	bot := &tgbotapi.BotAPI{Token: "token", Client: client}
	bot.SetAPIEndpoint(tgbotapi.APIEndpoint)

	if err := newTestTelegramHandler().HandleCommand(bot, 7, "bogus", ""); err != nil {
		t.Errorf("expected the failed error reply to be logged, got %v", err)
	}
	if len(client.paths) != 1 || !strings.HasSuffix(client.paths[0], "/sendMessage") {
		t.Errorf("expected one sendMessage attempt, got %v", client.paths)
	}
}

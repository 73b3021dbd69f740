package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/chatnova/chatnova/internal/memory"
	"github.com/chatnova/chatnova/internal/notify"
	"github.com/chatnova/chatnova/internal/search"
)

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if m, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, m.Text)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeSender) last(t *testing.T) string {
	t.Helper()
	if len(f.sent) == 0 {
		t.Fatal("nothing was sent")
	}
	return f.sent[len(f.sent)-1]
}

type stubAI struct {
	reply string
	err   error

	chatCalls  int
	imageCalls int
}

func (s *stubAI) ChatReply(_ context.Context, _ int64, _ string) (string, error) {
	s.chatCalls++
	return s.reply, s.err
}

func (s *stubAI) ImagePrompt(_ context.Context, _ string) (string, error) {
	s.imageCalls++
	return s.reply, s.err
}

func (s *stubAI) DescribeImage(_ context.Context, _ []byte) (string, error) {
	return s.reply, s.err
}

type stubSearch struct {
	results []search.Result
	err     error
}

func (s *stubSearch) Search(_ context.Context, _ string) ([]search.Result, error) {
	return s.results, s.err
}

func newTestApp(aiSvc *stubAI, searchClient search.Client) *BotApp {
	return NewBotApp(
		aiSvc,
		nil,
		searchClient,
		memory.NewStore(10, 300*time.Minute),
		notify.NewService(notify.NewInfra(0)),
		"testdata/logo.png",
	)
}

func commandMessage(text string) *tgbotapi.Message {
	cmdLen := len(text)
	if i := strings.Index(text, " "); i >= 0 {
		cmdLen = i
	}
	return &tgbotapi.Message{
		Text:     text,
		From:     &tgbotapi.User{ID: 42},
		Chat:     &tgbotapi.Chat{ID: 42},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func textMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: 42},
		Chat: &tgbotapi.Chat{ID: 42},
	}
}

func TestImageCommand_EmptyPromptSkipsAICall(t *testing.T) {
	aiSvc := &stubAI{}
	app := newTestApp(aiSvc, nil)
	bot := &fakeSender{}

	app.handleCommand(context.Background(), bot, commandMessage("/image"))

	if aiSvc.imageCalls != 0 {
		t.Fatalf("ImagePrompt called %d times, want 0", aiSvc.imageCalls)
	}
	if got := bot.last(t); got != MsgImageUsage {
		t.Fatalf("reply = %q, want usage text", got)
	}
}

func TestImageCommand_ForwardsPrompt(t *testing.T) {
	aiSvc := &stubAI{reply: "a neon skyline"}
	app := newTestApp(aiSvc, nil)
	bot := &fakeSender{}

	app.handleCommand(context.Background(), bot, commandMessage("/image futuristic city"))

	if aiSvc.imageCalls != 1 {
		t.Fatalf("ImagePrompt called %d times, want 1", aiSvc.imageCalls)
	}
	if got := bot.last(t); !strings.Contains(got, "a neon skyline") {
		t.Fatalf("reply = %q, want AI text", got)
	}
}

func TestSearchCommand_EmptyQuery(t *testing.T) {
	app := newTestApp(&stubAI{}, &stubSearch{})
	bot := &fakeSender{}

	app.handleCommand(context.Background(), bot, commandMessage("/search"))

	if got := bot.last(t); got != MsgSearchUsage {
		t.Fatalf("reply = %q, want usage text", got)
	}
}

func TestSearchCommand_ZeroResults(t *testing.T) {
	app := newTestApp(&stubAI{}, &stubSearch{})
	bot := &fakeSender{}

	app.handleCommand(context.Background(), bot, commandMessage("/search obscure query"))

	if got := bot.last(t); got != MsgNoResults {
		t.Fatalf("reply = %q, want no-results text", got)
	}
}

func TestSearchCommand_NotConfigured(t *testing.T) {
	app := newTestApp(&stubAI{}, nil)
	bot := &fakeSender{}

	app.handleCommand(context.Background(), bot, commandMessage("/search anything"))

	if got := bot.last(t); got != MsgSearchUnavailable {
		t.Fatalf("reply = %q, want unavailable text", got)
	}
}

func TestResetCommand_ClearsMemory(t *testing.T) {
	app := newTestApp(&stubAI{}, nil)
	bot := &fakeSender{}

	app.Memory.Append(42, "remember me")
	app.handleCommand(context.Background(), bot, commandMessage("/reset"))

	if got := app.Memory.Context(42); got != "" {
		t.Fatalf("Context after reset = %q, want empty", got)
	}
	if got := bot.last(t); got != MsgReset {
		t.Fatalf("reply = %q, want reset confirmation", got)
	}
}

func TestUnknownCommand_FallsThroughToChat(t *testing.T) {
	app := newTestApp(&stubAI{}, nil)
	bot := &fakeSender{}

	if app.handleCommand(context.Background(), bot, commandMessage("/translate hello")) {
		t.Fatal("unknown command was claimed by the command handler")
	}
}

func TestHandleText_AIFailureProducesSingleFallbackReply(t *testing.T) {
	app := newTestApp(&stubAI{err: errors.New("quota exceeded")}, nil)
	bot := &fakeSender{}

	app.handleText(context.Background(), bot, textMessage("hi"))

	if len(bot.sent) != 1 {
		t.Fatalf("sent %d messages, want exactly 1", len(bot.sent))
	}
	if bot.sent[0] != MsgAIError {
		t.Fatalf("reply = %q, want fallback text", bot.sent[0])
	}
}

func TestHandleText_RelaysReply(t *testing.T) {
	app := newTestApp(&stubAI{reply: "hello back"}, nil)
	bot := &fakeSender{}

	app.handleText(context.Background(), bot, textMessage("hello"))

	if got := bot.last(t); got != "hello back" {
		t.Fatalf("reply = %q, want %q", got, "hello back")
	}
}

func TestFormatSearchResults_TopThree(t *testing.T) {
	results := []search.Result{
		{Title: "One", Link: "https://1.example"},
		{Title: "Two", Link: "https://2.example"},
		{Title: "Three", Link: "https://3.example"},
		{Title: "Four", Link: "https://4.example"},
	}

	got := formatSearchResults(results)

	if !strings.Contains(got, "One") || !strings.Contains(got, "Three") {
		t.Fatalf("missing expected results: %q", got)
	}
	if strings.Contains(got, "Four") {
		t.Fatalf("fourth result should be cut: %q", got)
	}
	if !strings.HasPrefix(got, MsgSearchHeader) {
		t.Fatalf("missing header: %q", got)
	}
}

package telegram

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/chatnova/chatnova/internal/search"
)

const searchResultLimit = 3

// handleCommand возвращает false для неизвестных команд — они
// уходят в обычный чат, как и любой другой текст.
func (app *BotApp) handleCommand(ctx context.Context, bot sender, msg *tgbotapi.Message) bool {
	switch msg.Command() {
	case "start":
		app.handleStart(bot, msg)
	case "help":
		bot.Send(tgbotapi.NewMessage(msg.Chat.ID, MsgHelp))
	case "reset":
		app.handleReset(bot, msg)
	case "image":
		app.handleImageCommand(ctx, bot, msg)
	case "search":
		app.handleSearchCommand(ctx, bot, msg)
	default:
		return false
	}
	return true
}

func (app *BotApp) handleStart(bot sender, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	bot.Send(tgbotapi.NewMessage(chatID, MsgWelcome))

	// логотип опционален: если файла нет — предупреждаем, но не падаем
	if _, err := os.Stat(app.LogoPath); err != nil {
		log.Printf("[start] logo missing at %s: %v", app.LogoPath, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgLogoMissing))
		return
	}

	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(app.LogoPath))
	if _, err := bot.Send(photo); err != nil {
		log.Printf("[start] send logo fail: %v", err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgLogoMissing))
	}
}

func (app *BotApp) handleReset(bot sender, msg *tgbotapi.Message) {
	app.Memory.Clear(msg.From.ID)
	bot.Send(tgbotapi.NewMessage(msg.Chat.ID, MsgReset))
	log.Printf("[reset] tg=%d", msg.From.ID)
}

func (app *BotApp) handleImageCommand(ctx context.Context, bot sender, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	prompt := strings.TrimSpace(msg.CommandArguments())
	if prompt == "" {
		bot.Send(tgbotapi.NewMessage(chatID, MsgImageUsage))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	reply, err := app.AiService.ImagePrompt(ctx, prompt)
	if err != nil {
		log.Printf("[image] ai fail tg=%d: %v", msg.From.ID, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgAIError))
		return
	}

	bot.Send(tgbotapi.NewMessage(chatID, "🖼 AI-generated image: "+reply))
}

func (app *BotApp) handleSearchCommand(ctx context.Context, bot sender, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	query := strings.TrimSpace(msg.CommandArguments())
	if query == "" {
		bot.Send(tgbotapi.NewMessage(chatID, MsgSearchUsage))
		return
	}

	if app.SearchClient == nil {
		bot.Send(tgbotapi.NewMessage(chatID, MsgSearchUnavailable))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	results, err := app.SearchClient.Search(ctx, query)
	if err != nil {
		log.Printf("[search] fail tg=%d query=%q: %v", msg.From.ID, query, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgSearchError))
		return
	}

	bot.Send(tgbotapi.NewMessage(chatID, formatSearchResults(results)))
}

func formatSearchResults(results []search.Result) string {
	if len(results) == 0 {
		return MsgNoResults
	}

	if len(results) > searchResultLimit {
		results = results[:searchResultLimit]
	}

	lines := make([]string, 0, len(results)+1)
	lines = append(lines, MsgSearchHeader)
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("🔹 %s: %s", r.Title, r.Link))
	}
	return strings.Join(lines, "\n")
}

package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handlePhoto(ctx context.Context, bot sender, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	tgID := msg.From.ID

	// самый большой вариант — последний в срезе
	p := msg.Photo[len(msg.Photo)-1]

	log.Printf("[photo] start tg=%d file=%s size=%dx%d", tgID, p.FileID, p.Width, p.Height)

	bot.Send(tgbotapi.NewMessage(chatID, MsgProcessingPhoto))

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	data, err := app.downloadFile(ctx, p.FileID)
	if err != nil {
		log.Printf("[photo] download fail tg=%d: %v", tgID, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgDownloadError))
		return
	}
	log.Printf("[photo] downloaded %s", humanize.Bytes(uint64(len(data))))

	description, err := app.AiService.DescribeImage(ctx, data)
	if err != nil {
		log.Printf("[photo] describe fail tg=%d: %v", tgID, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgAIError))
		return
	}

	if strings.TrimSpace(description) == "" {
		description = MsgNoDescription
	}

	bot.Send(tgbotapi.NewMessage(chatID, description))
	log.Printf("[photo] done tg=%d", tgID)
}

package telegram

import (
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleText(ctx context.Context, bot sender, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	tgID := msg.From.ID

	log.Printf("[text] start tg=%d", tgID)

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	// сервис сам проверит протухание сессии и допишет сообщение в историю
	reply, err := app.AiService.ChatReply(ctx, tgID, msg.Text)
	if err != nil {
		log.Printf("[text] ai reply fail tg=%d: %v", tgID, err)

		app.ErrorNotify.Notify(
			ctx,
			err,
			fmt.Sprintf("❗ GPT reply failed\n\nUser: %d\nText: %q", tgID, msg.Text),
		)

		bot.Send(tgbotapi.NewMessage(chatID, MsgAIError))
		return
	}

	if reply == "" {
		bot.Send(tgbotapi.NewMessage(chatID, MsgAIError))
		return
	}

	bot.Send(tgbotapi.NewMessage(chatID, reply))
	log.Printf("[text] done tg=%d", tgID)
}

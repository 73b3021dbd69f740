package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Run — главный цикл получения апдейтов. Запускается один раз,
// после того как всё провязано. Апдейты обрабатываются по одному.
func (app *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		app.dispatchUpdate(context.Background(), update)
	}
}

// dispatchUpdate — граница отказа одного апдейта: паника хендлера
// не должна ронять цикл и задевать других пользователей.
func (app *BotApp) dispatchUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[dispatch] panic recovered tg=%d updateID=%d: %v",
				msg.From.ID, update.UpdateID, r)
			app.bot.Send(tgbotapi.NewMessage(msg.Chat.ID, MsgInternalError))
		}
	}()

	log.Printf("[bot_touch] fromTG=%d updateID=%d", msg.From.ID, update.UpdateID)

	app.handleMessage(ctx, msg)
}

func (app *BotApp) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		if app.handleCommand(ctx, app.bot, msg) {
			return
		}
		// неизвестная команда падает в обычный чат
	}

	switch {
	case msg.Voice != nil:
		app.handleVoice(ctx, app.bot, msg)
	case len(msg.Photo) > 0:
		app.handlePhoto(ctx, app.bot, msg)
	case msg.Text != "":
		app.handleText(ctx, app.bot, msg)
	}
}

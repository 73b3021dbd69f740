package telegram

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/chatnova/chatnova/internal/ai"
	"github.com/chatnova/chatnova/internal/memory"
	"github.com/chatnova/chatnova/internal/notify"
	"github.com/chatnova/chatnova/internal/search"
	"github.com/chatnova/chatnova/internal/speech"
)

// sender — исходящая доставка. *tgbotapi.BotAPI его реализует;
// в тестах хендлеры получают фейк.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type BotApp struct {
	AiService     ai.Service
	SpeechService *speech.Service
	SearchClient  search.Client // nil, если поиск не сконфигурирован
	Memory        memory.Store
	ErrorNotify   notify.Notificator

	LogoPath string

	bot *tgbotapi.BotAPI
}

func NewBotApp(
	aiService ai.Service,
	speechService *speech.Service,
	searchClient search.Client,
	mem memory.Store,
	errNotify notify.Notificator,
	logoPath string,
) *BotApp {
	return &BotApp{
		AiService:     aiService,
		SpeechService: speechService,
		SearchClient:  searchClient,
		Memory:        mem,
		ErrorNotify:   errNotify,
		LogoPath:      logoPath,
	}
}

func (app *BotApp) InitBot(token string) error {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	app.bot = bot
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)
	return nil
}

func (app *BotApp) GetBot() *tgbotapi.BotAPI {
	return app.bot
}

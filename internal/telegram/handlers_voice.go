package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/chatnova/chatnova/internal/speech"
)

func (app *BotApp) handleVoice(ctx context.Context, bot sender, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	tgID := msg.From.ID
	fileID := msg.Voice.FileID

	log.Printf("[voice] start tg=%d fileID=%s duration=%ds", tgID, fileID, msg.Voice.Duration)

	bot.Send(tgbotapi.NewMessage(chatID, MsgProcessingVoice))

	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	data, err := app.downloadFile(ctx, fileID)
	if err != nil {
		log.Printf("[voice] download fail tg=%d: %v", tgID, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgDownloadError))
		return
	}
	log.Printf("[voice] downloaded %s", humanize.Bytes(uint64(len(data))))

	path := filepath.Join(os.TempDir(), fmt.Sprintf("voice_%s.ogg", uuid.NewString()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("[voice] save tmp fail tg=%d: %v", tgID, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgVoiceServiceError))
		return
	}
	defer os.Remove(path)

	text, err := app.SpeechService.TranscribeOgg(ctx, path)
	switch {
	case errors.Is(err, speech.ErrUnintelligible):
		log.Printf("[voice] unintelligible tg=%d", tgID)
		bot.Send(tgbotapi.NewMessage(chatID, MsgVoiceUnintelligible))
		return
	case err != nil:
		log.Printf("[voice] transcribe fail tg=%d: %v", tgID, err)
		bot.Send(tgbotapi.NewMessage(chatID, MsgVoiceServiceError))
		return
	}

	bot.Send(tgbotapi.NewMessage(chatID, "🗣 Transcribed text: "+text))
	log.Printf("[voice] done tg=%d", tgID)
}

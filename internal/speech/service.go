package speech

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// === Единый сервис распознавания (конвертация + STT) ===

type Service struct {
	stt  STTClient
	conv Converter
}

func NewService(stt STTClient, conv Converter) *Service {
	return &Service{
		stt:  stt,
		conv: conv,
	}
}

// TranscribeOgg конвертирует голосовое в wav и распознаёт его.
// Временный wav удаляется на любом исходе; исходный ogg — забота вызывающего.
func (s *Service) TranscribeOgg(ctx context.Context, oggPath string) (string, error) {
	wavPath, err := s.conv.ConvertToWAV(ctx, oggPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		if err := os.Remove(wavPath); err != nil {
			log.Printf("[speech] remove tmp wav fail: %v", err)
		}
	}()

	text, err := s.stt.Transcribe(ctx, wavPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrUnintelligible
	}

	return text, nil
}

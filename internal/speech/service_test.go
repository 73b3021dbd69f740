package speech

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type stubSTT struct {
	text string
	err  error
}

func (s *stubSTT) Transcribe(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

// конвертер, который реально создаёт wav-файл рядом с исходником
type fileConverter struct{}

func (fileConverter) ConvertToWAV(_ context.Context, inputPath string) (string, error) {
	out := inputPath + ".wav"
	if err := os.WriteFile(out, []byte("RIFF"), 0o644); err != nil {
		return "", err
	}
	return out, nil
}

type failingConverter struct{}

func (failingConverter) ConvertToWAV(_ context.Context, _ string) (string, error) {
	return "", errors.New("ffmpeg: exit status 1")
}

func TestTranscribeOgg_HappyPathRemovesWav(t *testing.T) {
	ogg := filepath.Join(t.TempDir(), "voice.ogg")
	svc := NewService(&stubSTT{text: "hello there"}, fileConverter{})

	got, err := svc.TranscribeOgg(context.Background(), ogg)
	if err != nil {
		t.Fatalf("TranscribeOgg: %v", err)
	}
	if got != "hello there" {
		t.Fatalf("text = %q, want %q", got, "hello there")
	}
	if _, err := os.Stat(ogg + ".wav"); !os.IsNotExist(err) {
		t.Fatal("temporary wav was not removed")
	}
}

func TestTranscribeOgg_EmptyTranscriptIsUnintelligible(t *testing.T) {
	ogg := filepath.Join(t.TempDir(), "voice.ogg")
	svc := NewService(&stubSTT{text: "   "}, fileConverter{})

	_, err := svc.TranscribeOgg(context.Background(), ogg)
	if !errors.Is(err, ErrUnintelligible) {
		t.Fatalf("err = %v, want ErrUnintelligible", err)
	}
}

func TestTranscribeOgg_STTFailureIsUnavailable(t *testing.T) {
	ogg := filepath.Join(t.TempDir(), "voice.ogg")
	svc := NewService(&stubSTT{err: errors.New("status 503")}, fileConverter{})

	_, err := svc.TranscribeOgg(context.Background(), ogg)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if _, statErr := os.Stat(ogg + ".wav"); !os.IsNotExist(statErr) {
		t.Fatal("temporary wav was not removed on failure")
	}
}

func TestTranscribeOgg_ConversionFailureIsUnavailable(t *testing.T) {
	svc := NewService(&stubSTT{text: "unused"}, failingConverter{})

	_, err := svc.TranscribeOgg(context.Background(), "/tmp/nope.ogg")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

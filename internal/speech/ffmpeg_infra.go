package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type FFmpegConverter struct{}

func NewFFmpegConverter() *FFmpegConverter {
	return &FFmpegConverter{}
}

func (c *FFmpegConverter) ConvertToWAV(ctx context.Context, inputPath string) (string, error) {
	outPath := strings.TrimSuffix(inputPath, ".ogg") + ".wav"

	cmd := exec.CommandContext(
		ctx,
		"ffmpeg",
		"-y",
		"-i", inputPath,
		"-ar", "16000",
		"-ac", "1",
		outPath,
	)

	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg: %w: %s", err, out)
	}

	return outPath, nil
}

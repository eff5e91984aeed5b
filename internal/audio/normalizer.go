// Package audio converts uploaded audio containers into the mono 16-bit PCM
// waveform the speech recognizer expects, by shelling out to ffmpeg.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrDecode marks input that ffmpeg could not parse as the claimed format.
var ErrDecode = errors.New("audio: decode failed")

// Converter runs ffmpeg over stdin/stdout; no scratch files are kept.
type Converter struct {
	FFmpegPath string
}

// NewConverter returns a Converter using the given ffmpeg binary, or the one
// on PATH when empty.
func NewConverter(path string) *Converter {
	if path == "" {
		path = "ffmpeg"
	}
	return &Converter{FFmpegPath: path}
}

// ffmpegArgs builds the conversion invocation: decode the hinted container,
// downmix to one channel, force signed 16-bit little-endian samples, emit an
// uncompressed WAV container. An empty hint lets ffmpeg probe the input.
func ffmpegArgs(formatHint string) []string {
	args := []string{"-hide_banner", "-loglevel", "error"}
	if formatHint != "" {
		args = append(args, "-f", formatHint)
	}
	args = append(args,
		"-i", "pipe:0",
		"-ac", "1",
		"-acodec", "pcm_s16le",
		"-f", "wav",
		"pipe:1",
	)
	return args
}

// Normalize decodes raw audio claimed to be in formatHint and returns it as
// mono 16-bit PCM in a WAV container. Unparseable input fails with ErrDecode.
func (c *Converter) Normalize(ctx context.Context, raw []byte, formatHint string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.FFmpegPath, ffmpegArgs(formatHint)...)
	cmd.Stdin = bytes.NewReader(raw)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v: %s", ErrDecode, err, strings.TrimSpace(stderr.String()))
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: ffmpeg produced no audio", ErrDecode)
	}
	return out.Bytes(), nil
}

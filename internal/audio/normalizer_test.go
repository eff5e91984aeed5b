package audio

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os/exec"
	"testing"
	"time"
)

func TestFFmpegArgs(t *testing.T) {
	got := ffmpegArgs("webm")
	joined := ""
	for _, a := range got {
		joined += a + " "
	}
	for _, want := range []string{"-f webm", "-i pipe:0", "-ac 1", "-acodec pcm_s16le", "-f wav"} {
		if !bytes.Contains([]byte(joined), []byte(want)) {
			t.Fatalf("args missing %q: %v", want, got)
		}
	}
}

func TestFFmpegArgs_NoHint(t *testing.T) {
	got := ffmpegArgs("")
	if got[3] == "-f" {
		t.Fatalf("empty hint must not force an input format: %v", got)
	}
}

// buildStereoWAV writes a short 16-bit stereo sine tone as a WAV file.
func buildStereoWAV(t *testing.T) []byte {
	t.Helper()
	const (
		sampleRate = 16000
		channels   = 2
		samples    = 1600 // 100ms
	)
	var pcm bytes.Buffer
	for i := 0; i < samples; i++ {
		v := int16(8000 * math.Sin(2*math.Pi*440*float64(i)/sampleRate))
		for ch := 0; ch < channels; ch++ {
			binary.Write(&pcm, binary.LittleEndian, v)
		}
	}
	var buf bytes.Buffer
	dataLen := uint32(pcm.Len())
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, 36+dataLen)
	buf.WriteString("WAVEfmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*2))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*2))
	binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataLen)
	buf.Write(pcm.Bytes())
	return buf.Bytes()
}

// wavFormat reads channel count and bit depth from a WAV fmt chunk.
func wavFormat(t *testing.T, wav []byte) (channels, bits int) {
	t.Helper()
	idx := bytes.Index(wav, []byte("fmt "))
	if idx < 0 || len(wav) < idx+24 {
		t.Fatalf("output is not a WAV file")
	}
	channels = int(binary.LittleEndian.Uint16(wav[idx+10 : idx+12]))
	bits = int(binary.LittleEndian.Uint16(wav[idx+22 : idx+24]))
	return channels, bits
}

func requireFFmpeg(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
}

func TestNormalize_StereoToMono16(t *testing.T) {
	requireFFmpeg(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	out, err := NewConverter("").Normalize(ctx, buildStereoWAV(t), "wav")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	channels, bits := wavFormat(t, out)
	if channels != 1 {
		t.Fatalf("expected mono output, got %d channels", channels)
	}
	if bits != 16 {
		t.Fatalf("expected 16-bit samples, got %d", bits)
	}
}

func TestNormalize_CorruptInput(t *testing.T) {
	requireFFmpeg(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := NewConverter("").Normalize(ctx, []byte("definitely not audio"), "webm")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

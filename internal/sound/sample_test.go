package sound

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func TestClickLengthAndShape(t *testing.T) {
	s := Click(DefaultClickLength)
	if s.SampleRate != sampleRate {
		t.Fatalf("expected rate %d, got %d", sampleRate, s.SampleRate)
	}
	wantFrames := int(DefaultClickLength.Seconds() * sampleRate)
	if got := len(s.PCM) / 4; got != wantFrames {
		t.Fatalf("expected %d frames, got %d", wantFrames, got)
	}
	if d := s.Duration(); d < 24*time.Millisecond || d > 25*time.Millisecond {
		t.Fatalf("unexpected duration %v", d)
	}

	peak := func(from, to int) int {
		m := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(s.PCM[i*4:])))
			if v < 0 {
				v = -v
			}
			if v > m {
				m = v
			}
		}
		return m
	}
	n := len(s.PCM) / 4
	if head, tail := peak(0, n/4), peak(3*n/4, n); tail >= head {
		t.Fatalf("expected click to decay, head=%d tail=%d", head, tail)
	}
}

func TestLoadRejectsUnsupportedExt(t *testing.T) {
	_, err := Load("click.aiff")
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.wav"))
	if !errors.Is(err, fs.ErrNotExist) || !strings.Contains(err.Error(), "open sample") {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
}

func TestLoadRejectsCorruptSamples(t *testing.T) {
	dir := t.TempDir()
	tests := []struct{ name, want string }{
		{"click.mp3", "decoding MP3"},
		{"click.flac", "decoding FLAC"},
		{"click.ogg", "decoding OGG"},
	}
	for _, tt := range tests {
		path := filepath.Join(dir, tt.name)
		if err := os.WriteFile(path, []byte("not audio at all"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected %q error, got %v", tt.name, tt.want, err)
		}
	}
}

func writeMonoWAV(t *testing.T, path string, rate int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTruncatesLongSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.wav")
	const rate = 8000
	writeMonoWAV(t, path, rate, make([]int, 3*rate))

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d := s.Duration(); d != maxSampleDuration {
		t.Fatalf("expected truncation to %v, got %v", maxSampleDuration, d)
	}
}

func TestPCMBuilderStopsAtLimit(t *testing.T) {
	b := newPCMBuilder(100)
	for i := 0; i < 250; i++ {
		b.addFrame([]int{i, -i, 7})
	}
	if !b.full() || b.frames != 200 {
		t.Fatalf("expected 200 frames at 100 Hz, got %d", b.frames)
	}
	if len(b.buf) != 200*channelCount*bitDepth {
		t.Fatalf("unexpected buffer length %d", len(b.buf))
	}
	r := int16(binary.LittleEndian.Uint16(b.buf[199*4+2:]))
	if r != -199 {
		t.Fatalf("expected right channel -199 in last frame, got %d", r)
	}
}

func TestFloatTo16Clamps(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0, 0},
		{0.5, 16383},
		{1.5, 32767},
		{-3, -32767},
	}
	for _, tt := range tests {
		if got := floatTo16(tt.in); got != tt.want {
			t.Errorf("floatTo16(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLoadMonoWAVDuplicatesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tick.wav")
	writeMonoWAV(t, path, 22050, []int{1000, -2000, 3000, 0})

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.SampleRate != 22050 {
		t.Fatalf("expected 22050 Hz, got %d", s.SampleRate)
	}
	if len(s.PCM) != 4*4 {
		t.Fatalf("expected 4 stereo frames, got %d bytes", len(s.PCM))
	}
	l := int16(binary.LittleEndian.Uint16(s.PCM[4:]))
	r := int16(binary.LittleEndian.Uint16(s.PCM[6:]))
	if l != -2000 || r != -2000 {
		t.Fatalf("expected duplicated -2000, got %d/%d", l, r)
	}
}

func TestScaleTo16(t *testing.T) {
	tests := []struct{ v, bits, want int }{
		{1 << 23, 24, 1 << 15},
		{100, 16, 100},
		{-64, 8, -64 << 8},
	}
	for _, tt := range tests {
		if got := scaleTo16(tt.v, tt.bits); got != tt.want {
			t.Errorf("scaleTo16(%d, %d) = %d, want %d", tt.v, tt.bits, got, tt.want)
		}
	}
}

func TestIsSupportedExt(t *testing.T) {
	for _, ext := range []string{".wav", ".MP3", ".flac", ".ogg"} {
		if !IsSupportedExt(ext) {
			t.Errorf("expected %s to be supported", ext)
		}
	}
	if IsSupportedExt(".m4a") {
		t.Error("expected .m4a to be unsupported")
	}
}

func TestNopClicker(t *testing.T) {
	var c Clicker = Nop{}
	c.Click()
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

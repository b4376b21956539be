package sound

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// Load decodes a click sample, choosing the decoder by file extension.
func Load(path string) (Sample, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsSupportedExt(ext) {
		return Sample{}, fmt.Errorf("unsupported sample format %s (supported: %s)", ext, SupportedExtsList())
	}

	f, err := os.Open(path)
	if err != nil {
		return Sample{}, fmt.Errorf("open sample: %w", err)
	}
	defer f.Close()

	switch ext {
	case ".mp3":
		return decodeMP3(f)
	case ".wav":
		return decodeWAV(f)
	case ".flac":
		return decodeFLAC(f)
	default:
		return decodeOGG(f)
	}
}

func decodeMP3(r io.Reader) (Sample, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Sample{}, fmt.Errorf("decoding MP3: %w", err)
	}
	// go-mp3 always yields 16-bit stereo.
	limit := int64(maxSampleDuration.Seconds()*float64(dec.SampleRate())) * channelCount * bitDepth
	pcm, err := io.ReadAll(io.LimitReader(dec, limit))
	if err != nil {
		return Sample{}, fmt.Errorf("decoding MP3: %w", err)
	}
	return Sample{PCM: pcm, SampleRate: dec.SampleRate()}, nil
}

func decodeWAV(r io.ReadSeeker) (Sample, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Sample{}, errors.New("invalid WAV file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Sample{}, fmt.Errorf("reading WAV PCM data: %w", err)
	}
	channels := int(dec.NumChans)
	if channels == 0 {
		return Sample{}, errors.New("invalid WAV file: no channels")
	}
	depth := int(dec.BitDepth)
	b := newPCMBuilder(int(dec.SampleRate))
	frame := make([]int, channels)
	for i := 0; i+channels <= len(buf.Data) && !b.full(); i += channels {
		for ch := 0; ch < channels; ch++ {
			v := buf.Data[i+ch]
			if depth == 8 {
				// 8-bit WAV is unsigned
				v -= 128
			}
			frame[ch] = scaleTo16(v, depth)
		}
		b.addFrame(frame)
	}
	return Sample{PCM: b.buf, SampleRate: int(dec.SampleRate)}, nil
}

func decodeFLAC(r io.Reader) (Sample, error) {
	stream, err := flac.New(r)
	if err != nil {
		return Sample{}, fmt.Errorf("decoding FLAC: %w", err)
	}
	defer stream.Close()

	info := stream.Info
	channels := int(info.NChannels)
	bps := int(info.BitsPerSample)
	b := newPCMBuilder(int(info.SampleRate))
	vals := make([]int, channels)
	for !b.full() {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Sample{}, fmt.Errorf("decoding FLAC: %w", err)
		}
		n := int(frame.Subframes[0].NSamples)
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				vals[ch] = scaleTo16(int(frame.Subframes[ch].Samples[i]), bps)
			}
			b.addFrame(vals)
		}
	}
	return Sample{PCM: b.buf, SampleRate: int(info.SampleRate)}, nil
}

func decodeOGG(r io.Reader) (Sample, error) {
	reader, err := oggvorbis.NewReader(r)
	if err != nil {
		return Sample{}, fmt.Errorf("decoding OGG: %w", err)
	}
	channels := reader.Channels()
	b := newPCMBuilder(reader.SampleRate())
	samples := make([]float32, 4096*channels)
	vals := make([]int, channels)
	for !b.full() {
		n, err := reader.Read(samples)
		for i := 0; i+channels <= n; i += channels {
			for ch := 0; ch < channels; ch++ {
				vals[ch] = floatTo16(samples[i+ch])
			}
			b.addFrame(vals)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Sample{}, fmt.Errorf("decoding OGG: %w", err)
		}
	}
	return Sample{PCM: b.buf, SampleRate: reader.SampleRate()}, nil
}

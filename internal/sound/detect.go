package sound

import "strings"

var sampleExts = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsSupportedExt returns true if the extension is a loadable click sample format.
func IsSupportedExt(ext string) bool {
	return sampleExts[strings.ToLower(ext)]
}

// SupportedExtsList returns a human-readable list of loadable sample formats.
func SupportedExtsList() string {
	return ".mp3, .wav, .flac, .ogg"
}

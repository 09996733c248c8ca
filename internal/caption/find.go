package caption

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Find returns the caption track written next to base, e.g. base.en.vtt for
// a download whose output template was base. Plain base.vtt is accepted too.
// When several language tracks exist the lexically first one wins.
func Find(base string) (string, error) {
	matches, err := filepath.Glob(base + ".*vtt")
	if err != nil {
		return "", fmt.Errorf("glob captions: %w", err)
	}

	var tracks []string
	for _, m := range matches {
		if IsCaptionFile(m) {
			tracks = append(tracks, m)
		}
	}
	if len(tracks) == 0 {
		return "", fmt.Errorf("no caption track found for %s: %w", base, os.ErrNotExist)
	}

	sort.Strings(tracks)
	return tracks[0], nil
}

// IsCaptionFile reports whether path has a WebVTT extension.
func IsCaptionFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vtt")
}

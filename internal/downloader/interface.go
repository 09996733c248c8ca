package downloader

import "context"

// Downloader fetches the caption track of a video.
type Downloader interface {
	Download(ctx context.Context, url string) (Track, error)
	// Version reports the version string of the downloader binary.
	Version(ctx context.Context) (string, error)
}

// Track is a caption file fetched into a private temp directory.
type Track struct {
	VideoID string
	Path    string
	dir     string
}

// Dir returns the temp directory holding the track.
func (t Track) Dir() string {
	return t.dir
}

package caption

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const autoCaptions = `WEBVTT
Kind: captions
Language: en

00:00:00.000 --> 00:00:02.310 align:start position:0%
 
we<00:00:00.399><c> are</c><00:00:00.719><c> going</c><00:00:01.040><c> to</c>

00:00:02.310 --> 00:00:02.320 align:start position:0%
we are going to
 

00:00:02.320 --> 00:00:05.000 align:start position:0%
we are going to
talk<00:00:02.800><c> about</c><00:00:03.100><c>&nbsp;caching</c>
`

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "cue timing lines with repeats",
			raw:  "00:00:00.000 --> 00:00:02.000\nHello world\n00:00:02.000 --> 00:00:04.000\nHello world\n00:00:04.000 --> 00:00:06.000\nGoodbye",
			want: "Hello world Goodbye",
		},
		{
			name: "inline word timing tags",
			raw:  "<00:00:00.399><c> hello</c> <00:00:01.200><c>world</c>",
			want: "hello world",
		},
		{
			name: "auto caption dialect",
			raw:  autoCaptions,
			want: "we are going to talk about caching",
		},
		{
			name: "headers only",
			raw:  "WEBVTT\nKind: captions\nLanguage: en\n\n",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "other markup stripped",
			raw:  "<v Roger>Hi <i>there</i>",
			want: "Hi there",
		},
		{
			name: "dedup is case sensitive",
			raw:  "Hello\nhello\nHello",
			want: "Hello hello",
		},
		{
			name: "near duplicates kept",
			raw:  "we are going\nwe are going to",
			want: "we are going we are going to",
		},
		{
			name: "unmatched line shapes pass through",
			raw:  "NOTE this is a comment\n1\nkeep: me",
			want: "NOTE this is a comment 1 keep: me",
		},
		{
			name: "crlf line endings",
			raw:  "WEBVTT\r\n\r\n00:00:00.000 --> 00:00:01.000\r\nHello\r\n",
			want: "Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeString(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeNeverKeepsCueTiming(t *testing.T) {
	cue := regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}`)

	got, err := NormalizeString(autoCaptions)
	require.NoError(t, err)
	assert.False(t, cue.MatchString(got), "cue timing leaked into %q", got)
}

func TestNormalizeKeptLinesAreUnique(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("00:00:01.000 --> 00:00:02.000\n")
		b.WriteString([]string{"alpha one", "beta two", "gamma three"}[i%3])
		b.WriteString("\n")
	}

	got, err := NormalizeString(b.String())
	require.NoError(t, err)
	assert.Equal(t, "alpha one beta two gamma three", got)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	once, err := NormalizeString(autoCaptions)
	require.NoError(t, err)

	twice, err := NormalizeString(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeIsIdempotentAcrossJoins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "cue timing split over two lines",
			raw:  "00:00:00.000\n--> 00:00:01.000\nHello",
			want: "Hello",
		},
		{
			name: "arrow left on the first line",
			raw:  "Hi\n00:00:00.000 -->\n00:00:01.000\nthere",
			want: "Hi there",
		},
		{
			name: "stray angle brackets on separate lines",
			raw:  "x <\ny >",
			want: "x y >",
		},
		{
			name: "unclosed tag",
			raw:  "a <b\nc> d",
			want: "a b c> d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once, err := NormalizeString(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, once)

			twice, err := NormalizeString(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestNormalizeInvalidUTF8(t *testing.T) {
	_, err := NormalizeString("WEBVTT\n\nok line\n\xff\xfe broken\n")

	var fe *FormatError
	require.True(t, errors.As(err, &fe), "want *FormatError, got %v", err)
	assert.Equal(t, 4, fe.Line)
}

func TestNormalizeFileRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.en.vtt")
	require.NoError(t, os.WriteFile(path, []byte(autoCaptions), 0644))

	got, err := NormalizeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "we are going to talk about caching", got)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "caption file should be removed")
}

func TestNormalizeFileMissing(t *testing.T) {
	_, err := NormalizeFile(filepath.Join(t.TempDir(), "missing.vtt"))

	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestCleanLine(t *testing.T) {
	assert.Equal(t, "a b", CleanLine("  a&nbsp;&nbsp;  b  "))
	assert.Equal(t, "word", CleanLine("<00:00:01.000><c>word</c>"))
	assert.Equal(t, "00:00:01.000 --> 00:00:02.000", CleanLine("00:00:01.000 --> 00:00:02.000"))
	assert.Equal(t, "1 2", CleanLine("1 < 2"))
}

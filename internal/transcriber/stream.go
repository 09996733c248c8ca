package transcriber

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/caption-digest/internal/logger"
)

// delta is one piece of streamed text, or the error that ended the stream.
type delta struct {
	text string
	err  error
}

// send hands d to the consumer unless ctx is done first.
func send(ctx context.Context, out chan<- delta, d delta) bool {
	select {
	case out <- d:
		return true
	case <-ctx.Done():
		return false
	}
}

// collect is the only owner of the accumulator. It appends deltas in arrival
// order, forwards each to the progress sink, and returns the full text once
// the producer closes the channel. Any stream error discards the text.
func collect(ctx context.Context, provider string, deltas <-chan delta, progress *Progress, log logger.Logger) (string, error) {
	var buf strings.Builder
	count := 0

	for {
		select {
		case d, ok := <-deltas:
			if !ok {
				log.Debug(ctx, "%s stream completed: %d deltas, %d bytes", provider, count, buf.Len())
				if buf.Len() == 0 {
					log.Warn(ctx, "%s returned an empty response despite a successful exchange", provider)
				}
				return buf.String(), nil
			}
			if d.err != nil {
				log.Error(ctx, "Error in %s stream after %d deltas: %v", provider, count, d.err)
				return "", &TransportError{Provider: provider, Partial: buf.Len(), Err: d.err}
			}
			buf.WriteString(d.text)
			count++
			progress.Forward(d.text)

		case <-ctx.Done():
			return "", &TransportError{Provider: provider, Partial: buf.Len(), Err: ctx.Err()}
		}
	}
}

// preview returns at most n characters of s for debug logging.
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

package stream

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// framePrefix is the data marker; only lines carrying it are candidate
// frames, everything else on the stream is noise.
const framePrefix = "data: "

// Decoder turns a raw chunked byte stream into an ordered frame sequence.
// Chunk boundaries are transparent: a frame split across reads, including
// mid-rune, decodes identically to one delivered whole.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Frames yields decoded frames in arrival order until the underlying read
// completes. A malformed frame is dropped and decoding continues; it never
// aborts the stream. An unterminated line left in the buffer at stream end
// is discarded. Cancellation of ctx stops decoding without yielding an
// error.
func (d *Decoder) Frames(ctx context.Context) func(yield func(Frame, error) bool) {
	return func(yield func(Frame, error) bool) {
		ctx, span := tracer.Start(ctx, "decode frame stream")
		defer span.End()

		frameCount := 0
		droppedCount := 0
		defer func() {
			span.SetAttributes(
				attribute.Int("stream.frames_decoded", frameCount),
				attribute.Int("stream.frames_dropped", droppedCount),
			)
		}()

		scanner := bufio.NewScanner(d.r)
		scanner.Split(scanCompleteLines)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}

			line := scanner.Text()
			if !strings.HasPrefix(line, framePrefix) {
				continue
			}
			payload := strings.TrimPrefix(line, framePrefix)
			if len(payload) == 0 {
				continue
			}

			frame, err := ParseFrame([]byte(payload))
			if err != nil {
				droppedCount++
				span.RecordError(err)
				logger.DebugContext(ctx, "dropped malformed frame", "error", err)
				continue
			}

			frameCount++
			if !yield(frame, nil) {
				return
			}
		}

		if err := scanner.Err(); err != nil && !isExpectedStreamEnd(ctx, err) {
			span.RecordError(err)
			yield(nil, err)
		}
	}
}

// scanCompleteLines is bufio.ScanLines without the trailing-token salvage:
// a final line with no terminator is dropped, not decoded.
func scanCompleteLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	if atEOF {
		return len(data), nil, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[:len(data)-1]
	}
	return data
}

// isExpectedStreamEnd reports whether the read error is the natural result
// of the consumer tearing the stream down rather than a transport failure.
func isExpectedStreamEnd(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe)
}

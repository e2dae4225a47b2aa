package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/lixenwraith/quiz-fisher/constants"
)

const (
	fieldVertical = 'D'
	fieldPosition = 'P'

	readChunkSize = 256

	// maxPendingBytes drops an unterminated line from a device that never sends newlines
	maxPendingBytes = 1024
)

// ErrMalformedRecord marks a device line that could not be parsed
var ErrMalformedRecord = errors.New("malformed analog record")

// Reading is one parsed device line; absent fields stay unset
type Reading struct {
	Vertical    VerticalIntent
	HasVertical bool
	Position    int
	HasPosition bool
}

// ParseRecord parses a device line such as "D1,P512". Fields may come in any
// order or be omitted; unknown fields are ignored.
func ParseRecord(line string) (Reading, error) {
	var r Reading
	for _, field := range strings.Split(strings.TrimSpace(line), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		switch field[0] {
		case fieldVertical:
			v, err := strconv.Atoi(field[1:])
			if err != nil || v < int(IntentDown) || v > int(IntentUp) {
				return Reading{}, fmt.Errorf("%w: %q", ErrMalformedRecord, field)
			}
			r.Vertical, r.HasVertical = VerticalIntent(v), true
		case fieldPosition:
			v, err := strconv.Atoi(field[1:])
			if err != nil || v < 0 || v > constants.AnalogMax {
				return Reading{}, fmt.Errorf("%w: %q", ErrMalformedRecord, field)
			}
			r.Position, r.HasPosition = v, true
		}
	}
	return r, nil
}

// Analog reads line records from a device stream. The stream must return
// promptly when no data is available (a serial port with a short read timeout
// returns 0, nil). Poll drains every complete line received since the last
// tick: the latest position wins, and the latest non-idle direction wins so
// encoder steps between ticks are not lost.
type Analog struct {
	stream    io.ReadCloser
	chunk     []byte
	pending   []byte
	discarded int
	failed    bool
}

// NewAnalog wraps a byte stream
func NewAnalog(stream io.ReadCloser) *Analog {
	return &Analog{
		stream:  stream,
		chunk:   make([]byte, readChunkSize),
		pending: make([]byte, 0, maxPendingBytes),
	}
}

// Poll implements Source
func (a *Analog) Poll() Frame {
	var frame Frame

	n, err := a.stream.Read(a.chunk)
	if n > 0 {
		a.pending = append(a.pending, a.chunk[:n]...)
	}
	if err != nil && !errors.Is(err, io.EOF) && !a.failed {
		// Logged once; the next tick simply samples again
		a.failed = true
		log.Printf("input: analog read failed: %v", err)
	}

	rest := a.pending
	for {
		i := bytes.IndexByte(rest, '\n')
		if i < 0 {
			break
		}
		line := string(rest[:i])
		rest = rest[i+1:]

		if strings.TrimSpace(line) == "" {
			continue
		}
		r, perr := ParseRecord(line)
		if perr != nil {
			a.discarded++
			continue
		}
		if r.HasPosition {
			frame.Horizontal = float64(r.Position) / constants.AnalogMax
			frame.HasHorizontal = true
		}
		if r.HasVertical && r.Vertical != IntentNone {
			frame.Vertical = r.Vertical
		}
	}

	// Keep the unterminated tail for the next tick
	a.pending = a.pending[:copy(a.pending, rest)]
	if len(a.pending) > maxPendingBytes {
		a.pending = a.pending[:0]
		a.discarded++
	}

	return frame
}

// Discarded returns the number of malformed lines dropped so far
func (a *Analog) Discarded() int {
	return a.discarded
}

// Close releases the device
func (a *Analog) Close() error {
	return a.stream.Close()
}

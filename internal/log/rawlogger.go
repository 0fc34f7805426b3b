package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger traces every input event passing through the filter.
type RawLogger interface {
	Log(in bool, typ, code uint16, value int32)
}

// rawLogger implements RawLogger with thread-safe log.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single-line event log with timestamp, type, code and value.
// in=true means source->filter, in=false means filter->sink.
func (r *rawLogger) Log(in bool, typ, code uint16, value int32) {
	if r.w == nil {
		return
	}

	dir := "OUT"
	if in {
		dir = " IN"
	}

	line := fmt.Sprintf("%s %s type: 0x%02x, code: 0x%03x (%s), value: %d\n",
		time.Now().Format("2006/01/02 15:04:05.000"),
		dir,
		typ,
		code,
		codeName(typ, code),
		value)

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}

var keyNames = map[uint16]string{
	17: "KEY_W",
	30: "KEY_A",
	31: "KEY_S",
	32: "KEY_D",
}

func codeName(typ, code uint16) string {
	switch typ {
	case 0x00:
		if code == 0 {
			return "SYN_REPORT"
		}
		return "SYN"
	case 0x01:
		if n, ok := keyNames[code]; ok {
			return n
		}
		return "KEY"
	case 0x04:
		return "MSC"
	case 0x11:
		return "LED"
	default:
		return "?"
	}
}

// Package filter runs the read → resolve → inject loop between an input
// source and a synthetic output device.
package filter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/socd/internal/log"
	"github.com/Alia5/socd/resolver"
)

// Linux input event types and codes used by the loop.
const (
	EvSyn     uint16 = 0x00
	EvKey     uint16 = 0x01
	SynReport uint16 = 0x00
)

// Event is a single input event without its timestamp.
type Event struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Source yields input events. ReadOne blocks until an event is available.
type Source interface {
	ReadOne() (*Event, error)
}

// Sink receives injected events.
type Sink interface {
	WriteOne(ev *Event) error
}

// Filter owns the resolver state for one filtering session.
type Filter struct {
	src    Source
	sink   Sink
	state  *resolver.State
	logger *slog.Logger
	raw    log.RawLogger
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger sets the logger used for injected directives.
func WithLogger(l *slog.Logger) Option {
	return func(f *Filter) { f.logger = l }
}

// WithRawLogger sets the per-event trace logger.
func WithRawLogger(r log.RawLogger) Option {
	return func(f *Filter) { f.raw = r }
}

// New creates a Filter reading from src and writing to sink.
func New(src Source, sink Sink, opts ...Option) *Filter {
	f := &Filter{
		src:    src,
		sink:   sink,
		state:  resolver.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		raw:    log.NewRaw(nil),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// State exposes the resolver state. It must not be used while Run is active.
func (f *Filter) State() *resolver.State {
	return f.state
}

type readResult struct {
	ev  *Event
	err error
}

// Run forwards events until ctx is cancelled or the source or sink fails.
// Cancellation is not an error. The caller is responsible for unblocking a
// pending ReadOne on cancellation, typically by closing the source.
//
// The next event is read only after everything produced by the previous one
// has been written to the sink.
func (f *Filter) Run(ctx context.Context) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	next := make(chan struct{})
	events := make(chan readResult)
	go func() {
		for {
			select {
			case <-next:
			case <-readCtx.Done():
				return
			}
			ev, err := f.src.ReadOne()
			select {
			case events <- readResult{ev, err}:
			case <-readCtx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case next <- struct{}{}:
		}

		var r readResult
		select {
		case <-ctx.Done():
			return nil
		case r = <-events:
		}
		if r.err != nil {
			if ctx.Err() != nil && (errors.Is(r.err, io.EOF) || errors.Is(r.err, os.ErrClosed)) {
				return nil
			}
			return fmt.Errorf("read event: %w", r.err)
		}
		if err := f.Handle(r.ev); err != nil {
			return err
		}
	}
}

// Handle processes a single event and writes everything it produces to the
// sink, each event followed by a SYN_REPORT.
func (f *Filter) Handle(ev *Event) error {
	f.raw.Log(true, ev.Type, ev.Code, ev.Value)

	if ev.Type == EvKey {
		if key, ok := resolver.KeyForCode(ev.Code); ok {
			for _, d := range f.state.Process(key, ev.Value) {
				f.logger.Debug("injected key", "key", d.Key.String(), "down", d.Down)
				if err := f.inject(&Event{Type: EvKey, Code: d.Key.Code(), Value: d.Value()}); err != nil {
					return err
				}
			}
			return nil
		}
	}
	return f.inject(ev)
}

func (f *Filter) inject(ev *Event) error {
	if err := f.sink.WriteOne(ev); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	f.raw.Log(false, ev.Type, ev.Code, ev.Value)
	if err := f.sink.WriteOne(&Event{Type: EvSyn, Code: SynReport}); err != nil {
		return fmt.Errorf("write sync: %w", err)
	}
	return nil
}

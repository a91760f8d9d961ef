// Package touch reads single-finger touch input straight from a Linux evdev
// device, for handhelds whose touch panel is not exposed through SDL.
package touch

import (
	"fmt"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/internal"
)

// Phase is the stage of a touch.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseMoved
	PhaseEnded
)

// Event is one touch sample in device-normalized coordinates (0..1).
type Event struct {
	Phase Phase
	X     float64
	Y     float64
}

// axis maps a raw absolute value onto 0..1.
type axis struct {
	min, max int32
}

func (a axis) normalize(v int32) float64 {
	if a.max <= a.min {
		return 0
	}
	return float64(v-a.min) / float64(a.max-a.min)
}

// Reader turns evdev reports into touch events. Reads happen on a
// goroutine; consumers drain Events from the UI loop.
type Reader struct {
	dev    *evdev.InputDevice
	events chan Event
	done   chan struct{}
	closed atomic.Bool

	xAxis axis
	yAxis axis

	// state accumulated between SYN_REPORTs
	x, y     int32
	touching bool
	wasDown  bool
	moved    bool
}

// Open starts reading the device at path.
func Open(path string) (*Reader, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open touch device %s: %w", path, err)
	}

	r := &Reader{
		dev:    dev,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
		xAxis:  axis{min: 0, max: 1},
		yAxis:  axis{min: 0, max: 1},
	}

	if infos, err := dev.AbsInfos(); err == nil {
		r.xAxis = pickAxis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X)
		r.yAxis = pickAxis(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y)
	} else {
		internal.GetInternalLogger().Warn("Touch device reports no axis ranges", "path", path, "error", err)
	}

	go r.loop()
	return r, nil
}

func pickAxis(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return axis{min: info.Minimum, max: info.Maximum}
		}
	}
	return axis{min: 0, max: 1}
}

// Events returns the channel of decoded touch events.
// It is closed when the reader stops.
func (r *Reader) Events() <-chan Event {
	return r.events
}

// Close stops the reader and releases the device.
func (r *Reader) Close() error {
	if r.closed.Swap(true) {
		return nil
	}
	close(r.done)
	return r.dev.Close()
}

func (r *Reader) loop() {
	defer close(r.events)

	for {
		ev, err := r.dev.ReadOne()
		if err != nil {
			if !r.closed.Load() {
				internal.GetInternalLogger().Error("Touch device read failed", "error", err)
			}
			return
		}
		if out, ok := r.handle(ev); ok && !r.deliver(out) {
			return
		}
	}
}

// deliver posts out to the consumer. When the buffer is full, moves are
// dropped and began/ended wait for room. It reports false once the reader
// is closed.
func (r *Reader) deliver(out Event) bool {
	select {
	case r.events <- out:
		return true
	case <-r.done:
		return false
	default:
	}

	if out.Phase == PhaseMoved {
		return true
	}

	select {
	case r.events <- out:
		return true
	case <-r.done:
		return false
	}
}

// handle folds one raw event into the reader state and returns a touch
// event when a report completes.
func (r *Reader) handle(ev *evdev.InputEvent) (Event, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
			r.x = ev.Value
			r.moved = true
		case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
			r.y = ev.Value
			r.moved = true
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			r.touching = ev.Value != 0
		}
	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT {
			return Event{}, false
		}
		return r.report()
	}
	return Event{}, false
}

func (r *Reader) report() (Event, bool) {
	defer func() { r.moved = false }()

	out := Event{X: r.xAxis.normalize(r.x), Y: r.yAxis.normalize(r.y)}

	switch {
	case r.touching && !r.wasDown:
		r.wasDown = true
		out.Phase = PhaseBegan
	case !r.touching && r.wasDown:
		r.wasDown = false
		out.Phase = PhaseEnded
	case r.touching && r.moved:
		out.Phase = PhaseMoved
	default:
		return Event{}, false
	}
	return out, true
}

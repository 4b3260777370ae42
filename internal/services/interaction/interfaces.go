package interaction

import (
	"github.com/killallgit/segment-editor/internal/models"
)

// Sink receives the events an Interpreter emits, in emission order.
type Sink interface {
	Emit(ev models.Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev models.Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev models.Event) {
	f(ev)
}

// Recorder is a Sink that keeps every event it receives.
type Recorder struct {
	events []models.Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev models.Event) {
	r.events = append(r.events, ev)
}

// Events returns the recorded events.
func (r *Recorder) Events() []models.Event {
	return r.events
}

// Finals returns only the events that end a gesture or stand alone.
func (r *Recorder) Finals() []models.Event {
	var out []models.Event
	for _, ev := range r.events {
		if models.IsFinal(ev) {
			out = append(out, ev)
		}
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}

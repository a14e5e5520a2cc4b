package event

import "github.com/rs/zerolog"

// Log is the append-only event stream of one mission. Subscribers are
// called synchronously, in registration order, as each event is appended.
type Log struct {
	events []Event
	cursor int
	subs   []func(Event)
	logger zerolog.Logger
}

// NewLog creates an empty log that mirrors every event to logger at
// debug level.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

// Append records e and notifies subscribers.
func (l *Log) Append(e Event) {
	l.events = append(l.events, e)
	l.logger.Debug().
		Str("kind", e.Kind.String()).
		Int("turn", e.Turn).
		Uint64("actor", uint64(e.Actor)).
		Uint64("target", uint64(e.Target)).
		Int("damage", e.Damage).
		Bool("hit", e.Hit).
		Msg("event")
	for _, fn := range l.subs {
		fn(e)
	}
}

// Subscribe registers fn for every future event.
func (l *Log) Subscribe(fn func(Event)) {
	l.subs = append(l.subs, fn)
}

// All returns a copy of every event recorded so far.
func (l *Log) All() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Drain returns the events appended since the previous Drain.
func (l *Log) Drain() []Event {
	if l.cursor >= len(l.events) {
		return nil
	}
	out := make([]Event, len(l.events)-l.cursor)
	copy(out, l.events[l.cursor:])
	l.cursor = len(l.events)
	return out
}

// Len returns the number of recorded events.
func (l *Log) Len() int { return len(l.events) }

// Count returns how many recorded events have the given kind.
func (l *Log) Count(k Kind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

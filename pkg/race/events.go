package race

import "time"

// EventKind is a notable transition of the race
type EventKind int

const (
	EventRaceStarted EventKind = iota
	EventCheckpoint
	EventLapStarted
	EventLapCompleted
	EventRaceFinished
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventRaceStarted:
		return "race started"
	case EventCheckpoint:
		return "checkpoint"
	case EventLapStarted:
		return "lap started"
	case EventLapCompleted:
		return "lap completed"
	case EventRaceFinished:
		return "race finished"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Event carries what changed. Fields not relevant to the kind are zero.
type Event struct {
	Kind       EventKind
	Time       time.Time
	Checkpoint int
	Lap        int
	LapTime    float64
}

type subscription struct {
	id int
	fn func(Event)
}

type bus struct {
	subs []subscription
	next int
}

func (b *bus) subscribe(fn func(Event)) func() {
	id := b.next
	b.next++
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

func (b *bus) emit(e Event) {
	for _, s := range b.subs {
		s.fn(e)
	}
}

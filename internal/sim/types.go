package sim

import (
	"image"

	"github.com/san-kum/particles/internal/entity"
)

// State is the lifecycle of a simulation run. Closed is terminal.
type State int

const (
	Running State = iota
	Closed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

type EventKind int

const (
	EventQuit EventKind = iota
	EventMove
)

// Event is user input delivered by a Presenter. DX and DY are cursor steps
// and only meaningful for EventMove.
type Event struct {
	Kind   EventKind
	DX, DY int
}

func Quit() Event           { return Event{Kind: EventQuit} }
func Move(dx, dy int) Event { return Event{Kind: EventMove, DX: dx, DY: dy} }

// Presenter shows rendered frames and reports input. Poll must not block.
type Presenter interface {
	Poll() []Event
	Present(img *image.RGBA)
}

// Observer is notified after every frame has been stepped and rendered.
type Observer interface {
	OnFrame(frame int, store *entity.Store, bounces int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(frame int, store *entity.Store, bounces int)

func (f ObserverFunc) OnFrame(frame int, store *entity.Store, bounces int) {
	f(frame, store, bounces)
}

package audit

import "log"

type Event struct {
	ActorRole string
	ActorID   *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorRole,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks request handling; a full queue drops the event.
// A nil dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

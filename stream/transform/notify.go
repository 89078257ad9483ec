package transform

import (
	"slices"

	"github.com/google/uuid"
)

// EventConstantChanged is the name of the notification raised by every
// constant update.
const EventConstantChanged = "constantChanged"

// ConstantChanged is delivered to listeners after a unit's constant was
// set.
type ConstantChanged struct {
	Source uuid.UUID // ID of the unit
	Name   string    // always EventConstantChanged
	Value  any       // new constant, in the unit's element type
}

// Listener receives constant change notifications. It runs synchronously
// inside the setter and must not set the constant of the same unit.
type Listener func(ConstantChanged)

type subscription struct {
	id int
	fn Listener
}

// listeners is an ordered listener set. It is not synchronized.
type listeners struct {
	next int
	subs []subscription
}

func (l *listeners) add(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	id := l.next
	l.next++
	l.subs = append(l.subs, subscription{id: id, fn: fn})

	return func() {
		l.subs = slices.DeleteFunc(l.subs, func(s subscription) bool {
			return s.id == id
		})
	}
}

// emit calls the listeners registered when it starts, so a listener may
// cancel itself or others.
func (l *listeners) emit(ev ConstantChanged) {
	for _, s := range slices.Clone(l.subs) {
		s.fn(ev)
	}
}

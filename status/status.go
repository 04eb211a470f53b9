// Package status carries success/warning/error events alongside an
// optional value, so codecs never need to panic or throw to report a
// partial or failed operation.
package status

// Kind orders the severity of an Event. Error outranks Warning which
// outranks Success, matching the teacher's Logger bitmask
// (util/log.go: Error=1, Warning=2, Info=4) generalized into an
// ordered enum instead of a bitmask.
type Kind int

const (
	KindSuccess Kind = iota
	KindWarning
	KindError
)

func( k Kind ) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is a single occurrence worth reporting back to the caller:
// a severity, the component that raised it, and a human message.
type Event struct {
	Kind	Kind
	Source	string
	Message	string
	Err	error	// optional, set for Warning/Error events wrapping a Go error
}

func( e Event ) String() string {
	return "[" + e.Kind.String() + "] " + e.Source + ": " + e.Message
}

// Status is an append-only, ordered list of Events.
type Status struct {
	events []Event
}

// NewStatus builds an empty, successful Status.
func NewStatus() Status {
	return Status{}
}

// AddEvent appends e and returns the updated Status (Status is a value
// type; callers reassign: s = s.AddEvent(e)).
func( s Status ) AddEvent( e Event ) Status {
	s.events = append( append( []Event{}, s.events... ), e )
	return s
}

// Success appends a Success event.
func( s Status ) Success( source, message string ) Status {
	return s.AddEvent( Event{ KindSuccess, source, message, nil } )
}

// Warning appends a Warning event.
func( s Status ) Warning( source, message string, err error ) Status {
	return s.AddEvent( Event{ KindWarning, source, message, err } )
}

// Error appends an Error event.
func( s Status ) Error( source, message string, err error ) Status {
	return s.AddEvent( Event{ KindError, source, message, err } )
}

// Append concatenates other's events after s's own, returning the
// combined Status. The combined kind is the max precedence of either.
func( s Status ) Append( other Status ) Status {
	combined := append( []Event{}, s.events... )
	combined = append( combined, other.events... )
	return Status{ combined }
}

// Events returns a copy of the recorded events in insertion order.
func( s Status ) Events() []Event {
	cp := make( []Event, len(s.events) )
	copy( cp, s.events )
	return cp
}

// Kind returns the overall severity: the maximum Kind across events,
// or KindSuccess if there are none.
func( s Status ) Kind() Kind {
	max := KindSuccess
	for _, e := range s.events {
		if e.Kind > max {
			max = e.Kind
		}
	}
	return max
}

// IsSuccess reports whether no Warning/Error event was recorded.
func( s Status ) IsSuccess() bool {
	return s.Kind() == KindSuccess
}

// IsWarning reports whether the worst recorded event is a Warning.
func( s Status ) IsWarning() bool {
	return s.Kind() == KindWarning
}

// IsError reports whether any Error event was recorded.
func( s Status ) IsError() bool {
	return s.Kind() == KindError
}

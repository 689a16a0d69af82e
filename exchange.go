// SPDX-License-Identifier: GPL-3.0-or-later

package hoptrace

// Exchange is the unit of work passing through a hop.
//
// The [SpanDecorator] only reads the outcome of the exchange and
// only after the unit of work has completed.
type Exchange interface {
	// Failed returns whether the unit of work failed.
	Failed() bool

	// Exception returns the fault that caused the failure, if any.
	//
	// An exchange may be failed without carrying a fault, for
	// example, when a business rule rejected the message.
	Exception() error
}

// Outcome is a plain [Exchange] implementation.
//
// The zero value represents a successful exchange.
type Outcome struct {
	// IsFailed indicates whether the exchange failed.
	IsFailed bool

	// Err is the optional fault.
	Err error
}

var _ Exchange = Outcome{}

// NewOutcome returns the [Outcome] of a unit of work that returned err.
func NewOutcome(err error) Outcome {
	return Outcome{IsFailed: err != nil, Err: err}
}

// Failed implements [Exchange].
func (o Outcome) Failed() bool {
	return o.IsFailed
}

// Exception implements [Exchange].
func (o Outcome) Exception() error {
	return o.Err
}

// Direction indicates which side of a hop the current process represents.
type Direction int

const (
	// DirectionInitiator is the side sending to an endpoint.
	DirectionInitiator Direction = iota

	// DirectionReceiver is the side consuming from an endpoint.
	DirectionReceiver
)

// String implements [fmt.Stringer].
func (d Direction) String() string {
	switch d {
	case DirectionInitiator:
		return "initiator"
	case DirectionReceiver:
		return "receiver"
	default:
		return "unknown"
	}
}

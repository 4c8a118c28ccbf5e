package board

import "context"

// Forwarder hands newly submitted feedback to an external system.
type Forwarder interface {
	Forward(ctx context.Context, fb Feedback) error
}

// NopForwarder discards feedback.
type NopForwarder struct{}

func (NopForwarder) Forward(context.Context, Feedback) error { return nil }

package domain

import (
	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// ProgressSink receives progress events in emission order.
type ProgressSink interface {
	Emit(event m.Event)
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(event m.Event)

// Emit implements ProgressSink.
func (f SinkFunc) Emit(event m.Event) {
	f(event)
}

package domain

import (
	"sync"

	m "apkrepack.dev/pkg/apkrepack/internal/model"
)

// RecordingSink keeps every event in memory.
type RecordingSink struct {
	mu     sync.Mutex
	events []m.Event
}

// Emit implements ProgressSink.
func (s *RecordingSink) Emit(event m.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
}

// Events returns a copy of the recorded events.
func (s *RecordingSink) Events() []m.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]m.Event(nil), s.events...)
}

// Texts returns the text of every recorded event.
func (s *RecordingSink) Texts() []string {
	events := s.Events()

	texts := make([]string, 0, len(events))
	for _, event := range events {
		texts = append(texts, event.Text)
	}

	return texts
}

package model

import "time"

// Level classifies a progress event. Presentation maps it to a style.
type Level int

// Progress levels.
const (
	LevelDebug Level = iota
	LevelOutput
	LevelInfo
	LevelSuccess
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelOutput:
		return "output"
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}

	return "unknown"
}

// Event is one line of the progress transcript.
type Event struct {
	JobID string
	Stage Stage
	Level Level
	Text  string
	Time  time.Time
}

// Verdict is the single terminal result of a job.
type Verdict struct {
	JobID      string
	Success    bool
	Message    string
	OutputPath Path
	Elapsed    time.Duration
	Stages     []StageRecord
}

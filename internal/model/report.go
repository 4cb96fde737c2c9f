package model

import "time"

// Report is the persisted record of one job.
type Report struct {
	JobID         string         `yaml:"job_id"`
	Input         string         `yaml:"input"`
	Output        string         `yaml:"output,omitempty"`
	Success       bool           `yaml:"success"`
	Message       string         `yaml:"message"`
	UseNativeHook bool           `yaml:"use_native_hook"`
	StartedAt     time.Time      `yaml:"started_at"`
	Elapsed       string         `yaml:"elapsed"`
	Stages        []StageReport  `yaml:"stages"`
	Transcript    []TranscriptLn `yaml:"transcript,omitempty"`
}

// StageReport is the YAML form of a StageRecord.
type StageReport struct {
	Stage    string `yaml:"stage"`
	Status   string `yaml:"status"`
	Message  string `yaml:"message,omitempty"`
	Duration string `yaml:"duration"`
}

// TranscriptLn is the YAML form of an Event.
type TranscriptLn struct {
	Stage string `yaml:"stage"`
	Level string `yaml:"level"`
	Text  string `yaml:"text"`
}

package services

import "github.com/Varun6712/smart-calories/models"

// LogPublisher is notified after every successful log append.
type LogPublisher interface {
	PublishLog(entry models.LogEntry)
}

const logCreatedKind = "log.created"

type LogEvent struct {
	Kind string          `json:"kind"`
	Log  models.LogEntry `json:"log"`
}

func newLogCreated(entry models.LogEntry) LogEvent {
	return LogEvent{Kind: logCreatedKind, Log: entry}
}

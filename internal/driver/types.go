// Package driver orchestrates the batch processing of TCL case files:
// reading the §6.1 JSON schema, invoking parser/diffeng/printer per
// case, and reporting progress via Stage/Status/Event.
package driver

import "time"

// Stage describes a phase of processing a single case file.
type Stage string

const (
	StageRead  Stage = "read"
	StageParse Stage = "parse"
	StageDiff  Stage = "diff"
	StageLower Stage = "lower"
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for one case (or the overall batch when Case
// is empty).
type Event struct {
	Case    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}

func emit(sink ProgressSink, caseName string, stage Stage, status Status, err error, elapsed time.Duration) {
	if sink == nil {
		return
	}
	sink.OnEvent(Event{Case: caseName, Stage: stage, Status: status, Err: err, Elapsed: elapsed})
}

package services

import (
	"github.com/pterm/pterm"
)

// ProgressTypeDownload is the only progress type emitted today.
const ProgressTypeDownload = "download"

// ProgressEvent is published once per downloadable file, after that
// file's attempt sequence has finished. Current and Percentage only ever
// grow within one install run.
type ProgressEvent struct {
	Type       string `json:"type"`
	Filename   string `json:"filename"`
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// CompleteEvent is published exactly once, when every category and the
// optional client download have been attempted.
type CompleteEvent struct {
	InstanceName string `json:"instanceName"`
	Path         string `json:"path"`
}

type ErrorEvent struct {
	Err error `json:"error"`
}

// WarningEvent summarises the files that failed every download attempt.
// It fires at most once per install, before the completion event, and
// never fails the install.
type WarningEvent struct {
	Message string   `json:"message"`
	Files   []string `json:"files"`
}

// EventSink receives install lifecycle notifications. Publishing is fire
// and forget; sinks must not block the install and are never waited on.
type EventSink interface {
	Progress(ProgressEvent)
	Complete(CompleteEvent)
	Warning(WarningEvent)
	Error(ErrorEvent)
}

// ConsoleSink renders events for CLI use.
type ConsoleSink struct{}

func (ConsoleSink) Progress(e ProgressEvent) {
	pterm.Info.Printfln("[%d/%d] %s (%d%%)", e.Current, e.Total, e.Filename, e.Percentage)
}

func (ConsoleSink) Complete(e CompleteEvent) {
	pterm.Success.Printfln("Installed %s to %s", e.InstanceName, e.Path)
}

func (ConsoleSink) Warning(e WarningEvent) {
	pterm.Warning.Println(e.Message)
}

func (ConsoleSink) Error(e ErrorEvent) {
	pterm.Error.Println(e.Err)
}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) Progress(ProgressEvent) {}
func (NopSink) Complete(CompleteEvent) {}
func (NopSink) Warning(WarningEvent)   {}
func (NopSink) Error(ErrorEvent)       {}

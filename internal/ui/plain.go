package ui

import (
	"fmt"
	"io"

	"tclc/internal/driver"
)

// PlainSink writes one line per event to w, for non-terminal stdout
// (piped output, CI logs) where a live Bubble Tea view can't render —
// the fallback branch when stdout isn't a terminal.
type PlainSink struct {
	W io.Writer
}

func (s PlainSink) OnEvent(ev driver.Event) {
	if ev.Case == "" {
		return
	}
	switch ev.Status {
	case driver.StatusError:
		fmt.Fprintf(s.W, "%s: %s failed: %v\n", ev.Case, ev.Stage, ev.Err)
	case driver.StatusDone:
		fmt.Fprintf(s.W, "%s: %s done\n", ev.Case, ev.Stage)
	}
}

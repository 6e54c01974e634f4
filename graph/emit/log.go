package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nwidger/depgraph/graph"
)

// LogEmitter writes one line per event to an io.Writer, either as
// key=value text or as JSON Lines.
type LogEmitter struct {
	writer   io.Writer
	jsonMode bool
}

// NewLogEmitter creates a LogEmitter. A nil writer defaults to os.Stdout.
func NewLogEmitter(writer io.Writer, jsonMode bool) *LogEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LogEmitter{writer: writer, jsonMode: jsonMode}
}

// Emit implements Emitter.
func (l *LogEmitter) Emit(event graph.Event) {
	if l.jsonMode {
		l.emitJSON(event)
		return
	}
	l.emitText(event)
}

func (l *LogEmitter) emitJSON(event graph.Event) {
	errMsg := ""
	if event.Err != nil {
		errMsg = event.Err.Error()
	}
	name := ""
	if event.Dependency != nil {
		name = event.Dependency.Name()
	}
	data, err := json.Marshal(struct {
		ExecutionID string `json:"executionID"`
		Node        string `json:"node"`
		DurationMs  int64  `json:"durationMs"`
		Err         string `json:"err,omitempty"`
	}{
		ExecutionID: event.ExecutionID,
		Node:        name,
		DurationMs:  event.TimeEnd.Sub(event.TimeStart).Milliseconds(),
		Err:         errMsg,
	})
	if err != nil {
		_, _ = fmt.Fprintf(l.writer, "{\"error\":\"failed to marshal event: %v\"}\n", err)
		return
	}
	_, _ = fmt.Fprintf(l.writer, "%s\n", data)
}

func (l *LogEmitter) emitText(event graph.Event) {
	name := "<root>"
	if event.Dependency != nil {
		name = event.Dependency.Name()
	}
	_, _ = fmt.Fprintf(l.writer, "node=%s executionID=%s duration=%s",
		name, event.ExecutionID, event.TimeEnd.Sub(event.TimeStart))
	if event.Err != nil {
		_, _ = fmt.Fprintf(l.writer, " err=%q", event.Err.Error())
	}
	_, _ = fmt.Fprint(l.writer, "\n")
}

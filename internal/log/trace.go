package log

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Alia5/imsdl/input"
)

// EventTrace writes one line per platform event together with its routing
// decision.
type EventTrace interface {
	Log(ignored bool, ev input.Event)
}

type eventTrace struct {
	w   io.Writer
	now func() time.Time
	mu  sync.Mutex
}

// NewEventTrace creates a new EventTrace. If w is nil, the trace is a no-op.
func NewEventTrace(w io.Writer) EventTrace {
	return &eventTrace{w: w, now: time.Now}
}

// Log emits a single line with timestamp, direction and event description.
// ignored=true means the GUI swallowed the event, ignored=false means the
// application sees it.
func (t *eventTrace) Log(ignored bool, ev input.Event) {
	if t.w == nil {
		return
	}

	dir := "->APP"
	if ignored {
		dir = "->GUI"
	}

	line := fmt.Sprintf("%s %s %s\n",
		t.now().Format("2006/01/02 15:04:05.000"),
		dir,
		ev)

	t.mu.Lock()
	_, _ = io.WriteString(t.w, line)
	t.mu.Unlock()
}

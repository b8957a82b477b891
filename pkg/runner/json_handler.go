package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/domino/pkg/domain"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
//
// Every render emits {"type":"snapshot","snapshot":{...}}. Input lines may be a
// bare command, a JSON string or an object of the form {"intent":"rotate_left"}.
type JSONHandler struct {
	mu       sync.Mutex
	encoder  *json.Encoder
	pump     *linePump
	maxInput int
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		encoder:  json.NewEncoder(w),
		pump:     newLinePump(r),
		maxInput: DefaultMaxInputSize,
	}
}

func (h *JSONHandler) Render(ctx context.Context, snap domain.Snapshot) error {
	return h.emit(domain.NewSnapshotMessage(snap))
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.emit(domain.Message{Type: domain.MessageSystem, Message: msg})
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		text, err := h.pump.next(ctx)
		if err != nil {
			return "", err
		}
		clean, err := SanitizeInput(text, h.maxInput)
		if err != nil {
			if emitErr := h.emit(domain.NewErrorMessage(err)); emitErr != nil {
				return "", emitErr
			}
			continue
		}
		return decodeCommand(clean), nil
	}
}

func (h *JSONHandler) emit(m domain.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.encoder.Encode(m)
}

func decodeCommand(line string) string {
	if !strings.HasPrefix(line, "{") && !strings.HasPrefix(line, "\"") {
		return line
	}
	var s string
	if err := json.Unmarshal([]byte(line), &s); err == nil {
		return strings.TrimSpace(s)
	}
	var m domain.Message
	if err := json.Unmarshal([]byte(line), &m); err == nil && m.Intent != "" {
		return string(m.Intent)
	}
	return line
}

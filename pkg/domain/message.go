package domain

// MessageType tags a Message on line-oriented and websocket transports.
type MessageType string

const (
	MessageIntent   MessageType = "intent"
	MessageSnapshot MessageType = "snapshot"
	MessageSystem   MessageType = "system"
	MessageError    MessageType = "error"
)

// Message is the JSON envelope exchanged with remote frontends.
// Clients may omit Type when sending an intent.
type Message struct {
	Type     MessageType `json:"type,omitempty"`
	Intent   Intent      `json:"intent,omitempty"`
	Snapshot *Snapshot   `json:"snapshot,omitempty"`
	Message  string      `json:"message,omitempty"`
	Error    string      `json:"error,omitempty"`
}

func NewSnapshotMessage(s Snapshot) Message {
	return Message{Type: MessageSnapshot, Snapshot: &s}
}

func NewErrorMessage(err error) Message {
	return Message{Type: MessageError, Error: err.Error()}
}

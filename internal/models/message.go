package models

// MessageKind tags a StatusMessage as success or error. Handlers build
// these instead of passing loose maps around.
type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// StatusMessage is the status-display contract returned to the client.
type StatusMessage struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

func Success(text string) StatusMessage {
	return StatusMessage{Kind: MessageSuccess, Text: text}
}

func Error(text string) StatusMessage {
	return StatusMessage{Kind: MessageError, Text: text}
}

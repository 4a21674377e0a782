package assistant

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry in the assistant conversation.
type Message struct {
	ID        string
	Content   string
	Sender    Sender
	Timestamp time.Time
}

// NewMessage creates a Message stamped with the current time.
func NewMessage(content string, sender Sender) Message {
	return Message{
		ID:        uuid.New().String(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}
}

// Greeting is the assistant's opening message.
const Greeting = "Hello! I'm your AI study assistant. How can I help you today?"

// QuickReplies are suggested prompts shown before the conversation starts.
var QuickReplies = []string{
	"Create a study plan for me",
	"What topics should I focus on?",
	"Give me test preparation tips",
	"Help me with time management",
}

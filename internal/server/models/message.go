package models

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/common"
)

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = common.SenderUser
	SenderBot  Sender = common.SenderBot
)

// Valid reports whether s is one of the known senders.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// ChatMessage is one persisted half of a conversation turn. Timestamp is
// assigned by the store at write time (UTC) and orders a user's history;
// ID breaks ties between messages written within the same instant.
type ChatMessage struct {
	ID        string
	UserID    string
	Message   string
	Sender    Sender
	Timestamp time.Time
}

// CanonicalUserID is the form under which history is keyed and queried.
func CanonicalUserID(id string) string {
	return strings.TrimSpace(id)
}

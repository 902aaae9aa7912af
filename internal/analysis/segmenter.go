package analysis

import (
	"time"

	"mwa/internal/models"
)

// Annotated is one message with its segmentation facts: whether it opens a
// conversation and the gap since the previous message from either party.
// HasElapsed is false only for the first message of a contact partition.
type Annotated struct {
	Msg        models.Message
	IsStart    bool
	Elapsed    time.Duration
	HasElapsed bool
}

// ConversationStats summarizes one contact's conversations.
type ConversationStats struct {
	Conversations  int
	OwnerInitiated int
}

// SegmentContact annotates one contact's time-ordered messages with a silence
// gap threshold. The first message is always a conversation start; a contact
// with a single message yields one conversation of length one.
func SegmentContact(msgs []models.Message, gap time.Duration) []Annotated {
	out := make([]Annotated, len(msgs))
	for i, m := range msgs {
		if i == 0 {
			out[i] = Annotated{Msg: m, IsStart: true}
			continue
		}
		elapsed := m.Timestamp.Sub(msgs[i-1].Timestamp)
		out[i] = Annotated{
			Msg:        m,
			IsStart:    elapsed > gap,
			Elapsed:    elapsed,
			HasElapsed: true,
		}
	}
	return out
}

// ConversationsFor reduces an annotated partition to initiator counts: the
// initiator of a conversation is the sender of its start message.
func ConversationsFor(annotated []Annotated) ConversationStats {
	var cs ConversationStats
	for _, a := range annotated {
		if !a.IsStart {
			continue
		}
		cs.Conversations++
		if a.Msg.FromOwner() {
			cs.OwnerInitiated++
		}
	}
	return cs
}

package models

import (
	"errors"
	"sort"
	"time"
)

type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
)

var ErrEmptyCollection = errors.New("message collection is empty")

// Message is one delivered or sent text. Messages are immutable once loaded;
// ContactKey is an opaque grouping key already normalized by the extractor.
type Message struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text,omitempty"`
	Direction   Direction `json:"direction"`
	Timestamp   time.Time `json:"timestamp"`
	ContactKey  string    `json:"contact_key"`
	DisplayName string    `json:"display_name,omitempty"`
}

func (m *Message) FromOwner() bool {
	return m.Direction == DirectionSent
}

func (m *Message) Year() int {
	return m.Timestamp.Year()
}

// Collection is the immutable input corpus, partitioned by contact key with
// each partition in (timestamp, id) order.
type Collection struct {
	messages  []Message
	byContact map[string][]Message
	names     map[string]string
	years     []int
}

// NewCollection partitions and orders the corpus. The only fatal input
// condition is an empty corpus.
func NewCollection(messages []Message) (*Collection, error) {
	if len(messages) == 0 {
		return nil, ErrEmptyCollection
	}

	byContact := make(map[string][]Message)
	names := make(map[string]string)
	yearSet := make(map[int]struct{})
	for _, m := range messages {
		byContact[m.ContactKey] = append(byContact[m.ContactKey], m)
		if m.DisplayName != "" {
			names[m.ContactKey] = m.DisplayName
		}
		yearSet[m.Year()] = struct{}{}
	}

	for _, part := range byContact {
		sort.SliceStable(part, func(i, j int) bool {
			if part[i].Timestamp.Equal(part[j].Timestamp) {
				return part[i].ID < part[j].ID
			}
			return part[i].Timestamp.Before(part[j].Timestamp)
		})
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	return &Collection{
		messages:  messages,
		byContact: byContact,
		names:     names,
		years:     years,
	}, nil
}

func (c *Collection) Len() int {
	return len(c.messages)
}

// Contacts returns the contact keys in stable (sorted) order.
func (c *Collection) Contacts() []string {
	keys := make([]string, 0, len(c.byContact))
	for k := range c.byContact {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ByContact returns one contact's messages in time order. The slice is shared;
// callers must not mutate it.
func (c *Collection) ByContact(key string) []Message {
	return c.byContact[key]
}

// Years returns every calendar year that has at least one message, ascending.
func (c *Collection) Years() []int {
	return c.years
}

// DisplayName returns the resolved name for a contact key, or the key itself
// when the extractor provided none.
func (c *Collection) DisplayName(key string) string {
	if n, ok := c.names[key]; ok {
		return n
	}
	return key
}

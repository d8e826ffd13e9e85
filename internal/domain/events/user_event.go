package events

import (
	"encoding/json"
	"time"
)

type Type string

const (
	UserCreated Type = "user.created"
	UserUpdated Type = "user.updated"
	UserDeleted Type = "user.deleted"
)

type UserPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserEvent describes a committed change to a user. The event type doubles
// as the message subject.
type UserEvent struct {
	Type       Type        `json:"type"`
	User       UserPayload `json:"user"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewUserEvent(t Type, id uint, name, email string) *UserEvent {
	return &UserEvent{
		Type:       t,
		User:       UserPayload{ID: id, Name: name, Email: email},
		OccurredAt: time.Now().UTC(),
	}
}

func (e *UserEvent) Subject() string {
	return string(e.Type)
}

func (e *UserEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

package websocket

import (
	"encoding/json"
	"time"
)

type EventType string

const (
	EventPing EventType = "ping"
	EventPong EventType = "pong"

	// Forum events pushed to room feeds.
	EventMessage    EventType = "message"
	EventVote       EventType = "vote"
	EventRoomStatus EventType = "room_status"
	EventRoomGone   EventType = "room_gone"
)

type Event struct {
	Type      EventType       `json:"type"`
	RoomID    uint            `json:"room_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewEvent(eventType EventType, roomID uint, payload interface{}) (Event, error) {
	evt := Event{
		Type:      eventType,
		RoomID:    roomID,
		Timestamp: time.Now(),
	}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Event{}, err
		}
		evt.Data = data
	}
	return evt, nil
}

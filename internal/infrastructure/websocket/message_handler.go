package websocket

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"mados/internal/domain/entity"
	"mados/internal/domain/service"
	"mados/pkg/logger"
)

// Event types pushed to and accepted from clients.
const (
	EventPing         = "ping"
	EventPong         = "pong"
	EventError        = "error"
	EventMessage      = service.EventMessage
	EventNotification = service.EventNotification
	EventMarkRead     = "mark_read"
	EventLocation     = "location"
)

type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type inboundEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type MarkReadData struct {
	PartnerID string `json:"partner_id"`
}

type LocationData struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

var validate = validator.New()

// ClientHandler performs the actions a connected client can trigger.
type ClientHandler interface {
	MarkRead(userID, partnerID string) error
	UpdateLocation(userID string, coords entity.Coordinates)
}

// HandleClientMessage dispatches one frame received from the client.
func (m *Manager) HandleClientMessage(client *Client, raw []byte) {
	var in inboundEvent
	if err := json.Unmarshal(raw, &in); err != nil {
		m.Notify(client.UserID, EventError, "invalid message format")
		return
	}

	m.mutex.RLock()
	handler := m.handler
	m.mutex.RUnlock()

	switch in.Type {
	case EventPing:
		m.Notify(client.UserID, EventPong, nil)

	case EventMarkRead:
		var data MarkReadData
		if err := json.Unmarshal(in.Data, &data); err != nil || data.PartnerID == "" {
			m.Notify(client.UserID, EventError, "partner_id is required")
			return
		}
		if handler == nil {
			return
		}
		if err := handler.MarkRead(client.UserID, data.PartnerID); err != nil {
			m.Notify(client.UserID, EventError, err.Error())
		}

	case EventLocation:
		var data LocationData
		if err := json.Unmarshal(in.Data, &data); err != nil || validate.Struct(data) != nil {
			m.Notify(client.UserID, EventError, "invalid location")
			return
		}
		if handler != nil {
			handler.UpdateLocation(client.UserID, entity.Coordinates{Latitude: data.Latitude, Longitude: data.Longitude})
		}

	default:
		logger.Debug("websocket: ignoring %q from %s", in.Type, client.UserID)
	}
}

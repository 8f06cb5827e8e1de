package server

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pawnder/internal/models"
	"pawnder/internal/observability"

	"github.com/google/uuid"
)

// Event type constants prevent typos in event names.
const (
	EventLikeReceived = "like_received"
	EventMatchCreated = "match_created"
	EventUnmatched    = "unmatched"
)

// publishUserEvent pushes an event to one user's websocket clients, on this
// instance directly and on the others through Redis. Delivery is
// fire-and-forget: the mutation that triggered the event has already
// committed.
func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"id":      uuid.NewString(),
		"type":    eventType,
		"payload": payload,
		"sent_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	message := string(eventJSON)
	observability.WebSocketEventsTotal.WithLabelValues(eventType).Inc()
	if s.hub != nil {
		s.hub.Broadcast(userID, message)
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, message); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
	}
}

func petSummary(pet models.Pet) map[string]interface{} {
	return map[string]interface{}{
		"id":      pet.ID,
		"name":    pet.Name,
		"species": pet.Species,
		"avatar":  pet.Avatar,
	}
}

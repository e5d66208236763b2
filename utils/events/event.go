package events

import (
	"github.com/abdul-nishar/Entertainment-API/models"
)

// CatalogEventType identifies catalog lifecycle events.
type CatalogEventType string

const (
	// EntertainmentCreated is published when a new title lands in the catalog.
	EntertainmentCreated CatalogEventType = "EntertainmentCreated"
)

// CatalogEvent is the payload for catalog events.
type CatalogEvent struct {
	Type          CatalogEventType
	Entertainment models.Entertainment
}

// CatalogEventBus carries catalog events to the notifier. The channel is
// buffered so publishing never blocks an API handler; when the buffer is
// full the event is dropped rather than stalling the request.
var CatalogEventBus = make(chan CatalogEvent, 100)

// Publish enqueues an event without blocking.
func Publish(e CatalogEvent) {
	select {
	case CatalogEventBus <- e:
	default:
	}
}

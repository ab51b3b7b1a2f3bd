package service

import "github.com/google/uuid"

// Socket event names pushed to connected clients.
const (
	// EventDonorUpdated is broadcast to everyone after a donor location changes.
	EventDonorUpdated = "donorUpdated"
	// EventBloodRequest is sent to the targeted donor when a request is created.
	EventBloodRequest = "bloodRequest"
	// EventRequestAccepted is sent to the requester when the donor accepts.
	EventRequestAccepted = "requestAccepted"
	// EventRequestRejected is sent to the requester when the donor declines.
	EventRequestRejected = "requestRejected"
)

// Notifier defines the interface for pushing events to connected clients.
// Delivery is best effort: offline users miss events and senders never block
// on slow receivers.
type Notifier interface {
	// Unicast pushes an event to every live connection of one user. It is a
	// no-op when the user has no connections.
	Unicast(userID uuid.UUID, event string, payload any)

	// Broadcast pushes an event to every connected client.
	Broadcast(event string, payload any)
}

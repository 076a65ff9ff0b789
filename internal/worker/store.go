package worker

import "sync"

// DeliveryStore tracks which webhook deliveries have already been
// processed, keyed by the X-GitHub-Delivery GUID. GitHub redelivers
// events on timeouts, so duplicates must be detected.
type DeliveryStore struct {
	mu    sync.Mutex
	store map[string]bool
}

func NewDeliveryStore() *DeliveryStore {
	return &DeliveryStore{
		store: make(map[string]bool),
	}
}

// Seen checks if a delivery ID has already been processed.
func (s *DeliveryStore) Seen(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, found := s.store[id]
	return found
}

// Mark records a delivery ID as processed.
func (s *DeliveryStore) Mark(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[id] = true
}

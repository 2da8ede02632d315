package mocks

import (
	"sync"

	"github.com/you/invitesvc/domain"
)

// MockNotificationService implements domain.NotificationService interface for testing.
// It records every message so tests can assert on delivery without a provider.
type MockNotificationService struct {
	SendSMSFunc func(to, message string) error

	mu   sync.Mutex
	sent []SentSMS
}

// SentSMS records one delivered message
type SentSMS struct {
	To      string
	Message string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records the outbound message
func (m *MockNotificationService) SendSMS(to, message string) error {
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentSMS{To: to, Message: message})
	return nil
}

// Sent returns a copy of every recorded message
func (m *MockNotificationService) Sent() []SentSMS {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentSMS, len(m.sent))
	copy(out, m.sent)
	return out
}

// Ensure MockNotificationService implements the interface
var _ domain.NotificationService = (*MockNotificationService)(nil)

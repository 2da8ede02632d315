package notifications

import (
	"log"

	"github.com/you/invitesvc/domain"
)

// LogNotifier implements domain.NotificationService by recording that a send
// would have happened. Actual SMS delivery is a deployment concern wired in
// behind the same interface; the recipient is masked and the message body is
// never logged because it can carry a one-time code.
type LogNotifier struct{}

// NewLogNotifier creates a new log-only notification service
func NewLogNotifier() domain.NotificationService {
	return &LogNotifier{}
}

// SendSMS implements domain.NotificationService
func (n *LogNotifier) SendSMS(to, message string) error {
	log.Printf("SMS_DISPATCHED: to=%s body_len=%d", domain.MaskPhone(to), len(message))
	return nil
}

package contact

import (
	"context"
	"fmt"
	"strings"

	"expresso/internal/entities"
)

type Contact struct {
	notifier Notifier
}

func New(notifier Notifier) *Contact {
	return &Contact{
		notifier: notifier,
	}
}

// Submit validates presence of the required fields and hands the message to
// the notifier. Phone is optional.
func (s *Contact) Submit(ctx context.Context, msg entities.ContactMessage) error {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Subject) == "" ||
		strings.TrimSpace(msg.Body) == "" {
		return ErrMissingRequiredFields
	}

	err := s.notifier.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return nil
}

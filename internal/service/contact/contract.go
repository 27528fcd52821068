//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=contact_test
package contact

import (
	"context"

	"expresso/internal/entities"
)

// Notifier is the outbound delivery collaborator. The shipped implementation
// only logs the composed message; a real mail integration would replace it.
type Notifier interface {
	Send(ctx context.Context, msg entities.ContactMessage) error
}

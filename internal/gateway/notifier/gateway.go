package notifier

import (
	"context"
	"fmt"

	"expresso/internal/entities"
	"expresso/pkg/logger"
)

// Gateway stands in for the commercial mailbox integration. It composes the
// same message a real SMTP sender would and emits it through the structured
// logger, so operators can see submissions in the service output.
type Gateway struct {
	log       gatewayLogger
	recipient string
}

func New(log gatewayLogger, recipient string) *Gateway {
	return &Gateway{
		log:       log.With(),
		recipient: recipient,
	}
}

func (g *Gateway) Send(ctx context.Context, msg entities.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("notifier send: %w", err)
	}

	body := composeBody(msg)

	g.log.With(
		logger.NewField("to", g.recipient),
		logger.NewField("subject", "Nova mensagem do site - "+msg.Subject),
		logger.NewField("body", body),
	).Info("contact message relayed")

	ContactMessagesSentTotal.Inc()
	return nil
}

func composeBody(msg entities.ContactMessage) string {
	return fmt.Sprintf(
		"Nova mensagem recebida através do site da Expresso Itaporanga:\n\n"+
			"Nome: %s\nEmail: %s\nTelefone: %s\nAssunto: %s\n\nMensagem:\n%s",
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Body,
	)
}

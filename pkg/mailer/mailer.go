package mailer

import "context"

// Message is a single outbound email
type Message struct {
	To      string
	From    string // "Display Name <address>" form accepted
	Subject string
	HTML    string
}

// Mailer sends email through an external delivery provider. Delivery is
// asynchronous on the provider side and may fail per-message.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

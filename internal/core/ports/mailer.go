package ports

// OutboundEmail is a single message queued for delivery.
type OutboundEmail struct {
	To      string
	Subject string
	Body    string
}

// Mailer sends a single email synchronously.
type Mailer interface {
	Send(email OutboundEmail) error
}

// MailEnqueuer accepts emails for asynchronous, fire-and-forget delivery.
// Enqueue never reports delivery failure to the caller.
type MailEnqueuer interface {
	Enqueue(email OutboundEmail)
}

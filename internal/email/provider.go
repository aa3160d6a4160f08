package email

// Message is an outgoing email.
type Message struct {
	To       []string
	Subject  string
	HTMLBody string
}

// Provider sends email. All sends in this application are best-effort side
// effects dispatched from goroutines; a failing provider never fails the
// request that triggered it.
type Provider interface {
	Send(msg *Message) error
}

// NoopProvider discards mail. Used when email is disabled in config and in
// tests.
type NoopProvider struct{}

func (p *NoopProvider) Send(msg *Message) error {
	return nil
}

package infrastructure

import "log"

// NoEmail logs outgoing messages instead of delivering them, for
// environments without SMTP credentials configured
type NoEmail struct {
}

func (s *NoEmail) Send(address, subject, body string) error {
	log.Printf("email sending not configured, message with subject %q for %s not delivered\n", subject, address)
	return nil
}

func (s *NoEmail) From() string {
	return ""
}

package infrastructure

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

type SMTPMock struct {
	calledSend bool
	mu         sync.Mutex
	// FailSend makes every Send call fail, to exercise delivery errors
	FailSend bool
}

func (s *SMTPMock) Send(address, subject, body string) error {
	s.mu.Lock()
	s.calledSend = true
	s.mu.Unlock()

	if s.FailSend {
		return fiber.ErrInternalServerError
	}
	return nil
}

func (s *SMTPMock) From() string {
	return ""
}

func (s *SMTPMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

func (s *SMTPMock) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calledSend = false
	s.FailSend = false
}

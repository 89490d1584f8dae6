package infrastructure

import "sync"

type CaptchaMock struct {
	calledVerify bool
	mu           sync.Mutex
	// RejectAll makes every challenge fail verification
	RejectAll bool
}

func (c *CaptchaMock) Verify(token string) (bool, error) {
	c.mu.Lock()
	c.calledVerify = true
	c.mu.Unlock()

	if c.RejectAll || token == "" {
		return false, nil
	}
	return true, nil
}

func (c *CaptchaMock) CalledVerify() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calledVerify
}

func (c *CaptchaMock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calledVerify = false
	c.RejectAll = false
}

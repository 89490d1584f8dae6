package model

import (
	"time"
)

// MagicLink is a single-use, time-limited token emailed to an address to
// prove its owner requested to submit feedback. A link can be redeemed while
// it is neither used nor expired; both conditions are terminal.
type MagicLink struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex; not null"`
	Email     string `gorm:"index; not null"`
	Token     string `gorm:"uniqueIndex; not null"`
	ExpiresAt time.Time
	Used      bool
}

// Active reports whether the link can still be redeemed
func (l MagicLink) Active() bool {
	return !l.Used && time.Now().UTC().Before(l.ExpiresAt)
}

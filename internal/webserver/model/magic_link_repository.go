package model

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

type MagicLinkRepository struct {
	DB *gorm.DB
}

func (m *MagicLinkRepository) Save(link *MagicLink) error {
	if result := m.DB.Create(link); result.Error != nil {
		log.Printf("error creating magic link: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// FindActiveByEmail returns the unused, unexpired link for the given email, if any
func (m *MagicLinkRepository) FindActiveByEmail(email string) (*MagicLink, error) {
	return m.findActive("email = ?", email)
}

// FindActiveByEmailAndToken returns the redeemable link matching both values.
// Wrong, expired and already used tokens are all reported the same way, as no
// result at all.
func (m *MagicLinkRepository) FindActiveByEmailAndToken(email, token string) (*MagicLink, error) {
	return m.findActive("email = ? AND token = ?", email, token)
}

// MarkUsed flags the link as redeemed. Used links never become active again.
func (m *MagicLinkRepository) MarkUsed(link *MagicLink) error {
	if link.Used {
		return nil
	}
	link.Used = true
	if result := m.DB.Save(link); result.Error != nil {
		log.Printf("error marking magic link as used: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// DeleteExpired removes every link past its expiry date and returns how many
// rows were removed
func (m *MagicLinkRepository) DeleteExpired(now time.Time) (int64, error) {
	result := m.DB.Where("expires_at < ?", now).Delete(&MagicLink{})
	if result.Error != nil {
		log.Printf("error deleting expired magic links: %s\n", result.Error)
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (m *MagicLinkRepository) findActive(query string, args ...interface{}) (*MagicLink, error) {
	var link MagicLink

	result := m.DB.Where(query, args...).
		Where("used = ? AND expires_at > ?", false, time.Now().UTC()).
		First(&link)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &link, result.Error
}

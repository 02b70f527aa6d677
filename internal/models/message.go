package models

import "gorm.io/gorm"

// Message represents a direct text message between two users.
type Message struct {
	gorm.Model
	SenderID    uint   `gorm:"not null;index:idx_messages_pair"`
	RecipientID uint   `gorm:"not null;index:idx_messages_pair"`
	Text        string `gorm:"size:2000;not null"`
	Edited      bool   `gorm:"not null;default:false"`

	Sender    User `gorm:"foreignKey:SenderID"`
	Recipient User `gorm:"foreignKey:RecipientID"`
}

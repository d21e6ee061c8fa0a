package models

import "time"

type ItemRequest struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Description string    `json:"description,omitempty"`
	RequesterID uint      `json:"requester_id,omitempty"`
	Created     time.Time `json:"created,omitempty"`

	Requester *User  `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Items     []Item `gorm:"foreignKey:RequestID" json:"items,omitempty"`
}

package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primarykey" json:"id"`
	Text     string    `json:"text,omitempty"`
	ItemID   uint      `json:"item_id,omitempty"`
	AuthorID uint      `json:"author_id,omitempty"`
	Created  time.Time `json:"created,omitempty"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

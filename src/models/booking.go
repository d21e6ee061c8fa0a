package models

import (
	"time"

	"shareit/src/types"
)

type Booking struct {
	ID        uint                `gorm:"primarykey" json:"id"`
	StartDate time.Time           `gorm:"column:start_date" json:"start"`
	EndDate   time.Time           `gorm:"column:end_date" json:"end"`
	Status    types.BookingStatus `json:"status,omitempty"`
	BookerID  uint                `json:"booker_id,omitempty"`
	ItemID    uint                `json:"item_id,omitempty"`

	Booker *User `gorm:"foreignKey:BookerID" json:"booker,omitempty"`
	Item   *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

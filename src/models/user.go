package models

type User struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `gorm:"uniqueIndex" json:"email,omitempty"`

	Items    []Item    `gorm:"foreignKey:OwnerID" json:"items,omitempty"`
	Bookings []Booking `gorm:"foreignKey:BookerID" json:"bookings,omitempty"`
}

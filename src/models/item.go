package models

type Item struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Available   *bool  `json:"available,omitempty"`
	OwnerID     uint   `json:"owner_id,omitempty"`
	RequestID   *uint  `json:"request_id,omitempty"`

	Owner    *User        `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Request  *ItemRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Comments []Comment    `gorm:"foreignKey:ItemID" json:"comments,omitempty"`
}

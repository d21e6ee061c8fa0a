package types

import "time"

type BookingStatus string

const (
	BOOKING_WAITING  BookingStatus = "WAITING"
	BOOKING_APPROVED BookingStatus = "APPROVED"
	BOOKING_REJECTED BookingStatus = "REJECTED"
)

// BookingState Temporal/status bucket tokens accepted by the booking list endpoints.
type BookingState string

const (
	STATE_ALL      BookingState = "ALL"
	STATE_CURRENT  BookingState = "CURRENT"
	STATE_PAST     BookingState = "PAST"
	STATE_FUTURE   BookingState = "FUTURE"
	STATE_WAITING  BookingState = "WAITING"
	STATE_REJECTED BookingState = "REJECTED"
)

type CreateBookingRequestBody struct {
	ItemID uint      `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type CreateItemRequestBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	RequestID   *uint  `json:"requestId"`
}

// UpdateItemRequestBody Pointer fields make "absent" distinguishable from "set":
// a nil field keeps the stored value.
type UpdateItemRequestBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequestBody struct {
	Text string `json:"text" binding:"required"`
}

type CreateItemRequestBoardBody struct {
	Description string `json:"description" binding:"required"`
}

type CreateUserRequestBody struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequestBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type BookingListQuery struct {
	State string `form:"state,default=ALL"`
	From  int    `form:"from,default=1"`
	Size  int    `form:"size,default=20"`
}

type APIResponseUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type APIResponseItem struct {
	ID          uint   `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Available   *bool  `json:"available,omitempty"`
	RequestID   *uint  `json:"requestId,omitempty"`
}

type APIResponseBooking struct {
	ID     uint             `json:"id"`
	Start  time.Time        `json:"start"`
	End    time.Time        `json:"end"`
	Status BookingStatus    `json:"status"`
	Booker *APIResponseUser `json:"booker,omitempty"`
	Item   *APIResponseItem `json:"item,omitempty"`
}

// BookingShort Owner-facing annotation on item responses.
type BookingShort struct {
	ID       uint `json:"id"`
	BookerID uint `json:"bookerId"`
}

type APIResponseComment struct {
	ID         uint      `json:"id"`
	Text       string    `json:"text,omitempty"`
	AuthorName string    `json:"authorName,omitempty"`
	Created    time.Time `json:"created"`
}

type APIResponseItemAnnotated struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name,omitempty"`
	Description string               `json:"description,omitempty"`
	Available   *bool                `json:"available,omitempty"`
	LastBooking *BookingShort        `json:"lastBooking"`
	NextBooking *BookingShort        `json:"nextBooking"`
	Comments    []APIResponseComment `json:"comments"`
}

type APIResponseItemRequest struct {
	ID          uint              `json:"id"`
	Description string            `json:"description,omitempty"`
	Created     time.Time         `json:"created"`
	Items       []APIResponseItem `json:"items"`
}

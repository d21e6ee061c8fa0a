package common

import (
	"time"

	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"
	"shareit/src/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateBooking Persists a WAITING booking after the availability, ownership and
// date checks pass. The item row is locked for the duration of the transaction so
// two bookers racing for the same item serialize on the availability check.
func CreateBooking(userId uint, params *types.CreateBookingRequestBody) (*models.Booking, error) {
	d := db.GetDb()
	var booking models.Booking
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := checkUserExists(tx, userId); err != nil {
			return err
		}
		if !params.Start.Before(params.End) {
			return WrongDate("booking start must be strictly before its end")
		}
		var item models.Item
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&models.Item{ID: params.ItemID}).
			First(&item).
			Error; err != nil {
			return asNotFound(err, "item with id = %d does not exist", params.ItemID)
		}
		if item.OwnerID == userId {
			return SelfBooking("the owner cannot book their own item")
		}
		if item.Available == nil || !*item.Available {
			return UnavailableItem("item is not available for booking")
		}
		booking = models.Booking{
			StartDate: params.Start,
			EndDate:   params.End,
			Status:    types.BOOKING_WAITING,
			BookerID:  userId,
			ItemID:    item.ID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.
			Preload("Booker").
			Preload("Item").
			First(&booking, booking.ID).
			Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ChangeBookingStatus Owner approval or rejection. Approving an APPROVED booking
// fails; rejecting succeeds from any state.
func ChangeBookingStatus(bookingId uint, userId uint, approved bool) (*models.Booking, error) {
	d := db.GetDb()
	var booking models.Booking
	err := d.Transaction(func(tx *gorm.DB) error {
		if err := checkUserExists(tx, userId); err != nil {
			return err
		}
		if err := tx.
			Preload("Booker").
			Preload("Item").
			Where(&models.Booking{ID: bookingId}).
			First(&booking).
			Error; err != nil {
			return asNotFound(err, "booking with id = %d does not exist", bookingId)
		}
		if booking.Item == nil || booking.Item.OwnerID != userId {
			return WrongOwner("only the item owner can change the booking status")
		}
		if approved {
			if booking.Status == types.BOOKING_APPROVED {
				return AlreadyApproved("booking is already approved")
			}
			booking.Status = types.BOOKING_APPROVED
		} else {
			booking.Status = types.BOOKING_REJECTED
		}
		return tx.
			Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", booking.Status).
			Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBooking Read access is restricted to the booker and the item owner.
func GetBooking(bookingId uint, userId uint) (*models.Booking, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := d.
		Preload("Booker").
		Preload("Item").
		Where(&models.Booking{ID: bookingId}).
		First(&booking).
		Error; err != nil {
		return nil, asNotFound(err, "booking with id = %d does not exist", bookingId)
	}
	if booking.BookerID != userId && (booking.Item == nil || booking.Item.OwnerID != userId) {
		return nil, WrongOwner("only booking participants can view this booking")
	}
	return &booking, nil
}

func ListBookingsByBooker(userId uint, state string, from int, size int) ([]models.Booking, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	q := d.
		Model(&models.Booking{}).
		Preload("Booker").
		Preload("Item").
		Where("bookings.booker_id = ?", userId)
	return listBookings(q, state, from, size)
}

func ListBookingsByOwner(ownerId uint, state string, from int, size int) ([]models.Booking, error) {
	d := db.GetDb()
	if err := checkUserExists(d, ownerId); err != nil {
		return nil, err
	}
	q := d.
		Model(&models.Booking{}).
		Preload("Booker").
		Preload("Item").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerId)
	return listBookings(q, state, from, size)
}

func listBookings(q *gorm.DB, state string, from int, size int) ([]models.Booking, error) {
	now := time.Now()
	switch types.BookingState(state) {
	case types.STATE_ALL:
		q = q.Order("bookings.start_date desc")
	case types.STATE_CURRENT:
		q = q.
			Where("bookings.start_date <= ? AND bookings.end_date > ?", now, now).
			Order("bookings.start_date asc")
	case types.STATE_PAST:
		q = q.
			Where("bookings.end_date < ?", now).
			Order("bookings.start_date desc")
	case types.STATE_FUTURE:
		q = q.
			Where("bookings.start_date > ?", now).
			Order("bookings.start_date desc")
	case types.STATE_WAITING, types.STATE_REJECTED:
		q = q.
			Where("bookings.status = ?", state).
			Order("bookings.start_date desc")
	default:
		return nil, WrongDate("Unknown state: UNSUPPORTED_STATUS")
	}
	offset, limit := utils.Paginate(from, size)
	var bookings []models.Booking
	if err := q.Offset(offset).Limit(limit).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// lastBookingForItem Most recent non-rejected booking started on or before now.
func lastBookingForItem(d *gorm.DB, itemId uint, now time.Time) *types.BookingShort {
	var booking models.Booking
	if err := d.
		Where("item_id = ? AND start_date <= ? AND status <> ?", itemId, now, types.BOOKING_REJECTED).
		Order("start_date desc").
		First(&booking).
		Error; err != nil {
		return nil
	}
	return &types.BookingShort{ID: booking.ID, BookerID: booking.BookerID}
}

// nextBookingForItem Earliest non-rejected booking starting after now.
func nextBookingForItem(d *gorm.DB, itemId uint, now time.Time) *types.BookingShort {
	var booking models.Booking
	if err := d.
		Where("item_id = ? AND start_date > ? AND status <> ?", itemId, now, types.BOOKING_REJECTED).
		Order("start_date asc").
		First(&booking).
		Error; err != nil {
		return nil
	}
	return &types.BookingShort{ID: booking.ID, BookerID: booking.BookerID}
}

func ToBookingResponse(b *models.Booking) *types.APIResponseBooking {
	res := &types.APIResponseBooking{
		ID:     b.ID,
		Start:  b.StartDate,
		End:    b.EndDate,
		Status: b.Status,
		Booker: &types.APIResponseUser{ID: b.BookerID},
		Item:   &types.APIResponseItem{ID: b.ItemID},
	}
	if b.Booker != nil {
		res.Booker.ID = b.Booker.ID
	}
	if b.Item != nil {
		res.Item.ID = b.Item.ID
		res.Item.Name = b.Item.Name
	}
	return res
}

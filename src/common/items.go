package common

import (
	"strings"
	"time"

	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"
	"shareit/src/utils"

	"gorm.io/gorm"
)

func CreateItem(userId uint, params *types.CreateItemRequestBody) (*models.Item, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	item := models.Item{
		Name:        params.Name,
		Description: params.Description,
		Available:   params.Available,
		OwnerID:     userId,
		RequestID:   params.RequestID,
	}
	if err := d.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem Partial patch, only the owner may change an item. Nil fields keep
// their stored value.
func UpdateItem(userId uint, itemId uint, params *types.UpdateItemRequestBody) (*models.Item, error) {
	d := db.GetDb()
	var item models.Item
	if err := d.Where(&models.Item{ID: itemId}).First(&item).Error; err != nil {
		return nil, asNotFound(err, "item with id = %d does not exist", itemId)
	}
	if item.OwnerID != userId {
		return nil, WrongOwner("only the owner can update the item")
	}
	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Description != nil {
		item.Description = *params.Description
	}
	if params.Available != nil {
		item.Available = params.Available
	}
	if err := d.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func GetItemAnnotated(itemId uint, userId uint) (*types.APIResponseItemAnnotated, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	var item models.Item
	if err := d.Where(&models.Item{ID: itemId}).First(&item).Error; err != nil {
		return nil, asNotFound(err, "item with id = %d does not exist", itemId)
	}
	return annotateItem(d, &item, userId), nil
}

func GetAllItemsByUser(userId uint, from int, size int) ([]*types.APIResponseItemAnnotated, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	offset, limit := utils.Paginate(from, size)
	var items []models.Item
	if err := d.
		Where("owner_id = ?", userId).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	res := make([]*types.APIResponseItemAnnotated, 0, len(items))
	for i := range items {
		res = append(res, annotateItem(d, &items[i], userId))
	}
	return res, nil
}

// SearchItems Case-insensitive substring match over name and description,
// available items only. An empty query returns an empty set, never a full scan.
func SearchItems(text string, from int, size int) ([]models.Item, error) {
	if text == "" {
		return []models.Item{}, nil
	}
	d := db.GetDb()
	offset, limit := utils.Paginate(from, size)
	pattern := "%" + strings.ToLower(text) + "%"
	var items []models.Item
	if err := d.
		Where("available = ?", true).
		Where("(LOWER(name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&items).
		Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CreateComment Only a user whose booking of the item has already ended may comment.
func CreateComment(authorId uint, itemId uint, params *types.CreateCommentRequestBody) (*models.Comment, error) {
	d := db.GetDb()
	if err := checkUserExists(d, authorId); err != nil {
		return nil, err
	}
	var item models.Item
	if err := d.Where(&models.Item{ID: itemId}).First(&item).Error; err != nil {
		return nil, asNotFound(err, "item with id = %d does not exist", itemId)
	}
	var finished models.Booking
	if err := d.
		Where("booker_id = ? AND item_id = ? AND end_date < ?", authorId, itemId, time.Now()).
		Order("end_date desc").
		First(&finished).
		Error; err != nil {
		return nil, WrongAuthor("you cannot leave a comment on this item")
	}
	comment := models.Comment{
		Text:     params.Text,
		ItemID:   itemId,
		AuthorID: authorId,
		Created:  time.Now(),
	}
	if err := d.Create(&comment).Error; err != nil {
		return nil, err
	}
	if err := d.Preload("Author").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func annotateItem(d *gorm.DB, item *models.Item, viewerId uint) *types.APIResponseItemAnnotated {
	now := time.Now()
	var last, next *types.BookingShort
	// last/next annotations are visible to the owner only
	if viewerId == item.OwnerID {
		last = lastBookingForItem(d, item.ID, now)
		next = nextBookingForItem(d, item.ID, now)
	}
	var comments []models.Comment
	d.Preload("Author").Where("item_id = ?", item.ID).Order("id asc").Find(&comments)
	cs := make([]types.APIResponseComment, 0, len(comments))
	for i := range comments {
		cs = append(cs, *ToCommentResponse(&comments[i]))
	}
	return &types.APIResponseItemAnnotated{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		LastBooking: last,
		NextBooking: next,
		Comments:    cs,
	}
}

func ToItemResponse(item *models.Item) *types.APIResponseItem {
	return &types.APIResponseItem{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

func ToCommentResponse(comment *models.Comment) *types.APIResponseComment {
	res := &types.APIResponseComment{
		ID:      comment.ID,
		Text:    comment.Text,
		Created: comment.Created,
	}
	if comment.Author != nil {
		res.AuthorName = comment.Author.Name
	}
	return res
}

package common

import (
	"time"

	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

func CreateItemRequest(userId uint, params *types.CreateItemRequestBoardBody, created time.Time) (*models.ItemRequest, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	request := models.ItemRequest{
		Description: params.Description,
		RequesterID: userId,
		Created:     created,
	}
	if err := d.Create(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func GetItemRequest(requestId uint, userId uint) (*types.APIResponseItemRequest, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	var request models.ItemRequest
	if err := d.Where(&models.ItemRequest{ID: requestId}).First(&request).Error; err != nil {
		return nil, asNotFound(err, "request with id = %d does not exist", requestId)
	}
	return toItemRequestResponse(d, &request), nil
}

func GetOwnItemRequests(userId uint) ([]*types.APIResponseItemRequest, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	var requests []models.ItemRequest
	if err := d.
		Where("requester_id = ?", userId).
		Order("created desc").
		Find(&requests).
		Error; err != nil {
		return nil, err
	}
	return toItemRequestResponses(d, requests), nil
}

// GetOtherUsersItemRequests The from parameter is the page index here, matching
// the request board's historical pagination contract.
func GetOtherUsersItemRequests(userId uint, from int, size int) ([]*types.APIResponseItemRequest, error) {
	d := db.GetDb()
	if err := checkUserExists(d, userId); err != nil {
		return nil, err
	}
	var requests []models.ItemRequest
	if err := d.
		Where("requester_id <> ?", userId).
		Order("created desc").
		Offset(from * size).
		Limit(size).
		Find(&requests).
		Error; err != nil {
		return nil, err
	}
	return toItemRequestResponses(d, requests), nil
}

func toItemRequestResponses(d *gorm.DB, requests []models.ItemRequest) []*types.APIResponseItemRequest {
	res := make([]*types.APIResponseItemRequest, 0, len(requests))
	for i := range requests {
		res = append(res, toItemRequestResponse(d, &requests[i]))
	}
	return res
}

// toItemRequestResponse Enriches a request with the items created to fulfill it.
func toItemRequestResponse(d *gorm.DB, request *models.ItemRequest) *types.APIResponseItemRequest {
	var items []models.Item
	d.Where("request_id = ?", request.ID).Order("id asc").Find(&items)
	is := make([]types.APIResponseItem, 0, len(items))
	for i := range items {
		is = append(is, *ToItemResponse(&items[i]))
	}
	return &types.APIResponseItemRequest{
		ID:          request.ID,
		Description: request.Description,
		Created:     request.Created,
		Items:       is,
	}
}

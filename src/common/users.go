package common

import (
	"errors"

	"shareit/src/db"
	"shareit/src/models"
	"shareit/src/types"

	"gorm.io/gorm"
)

func CreateUser(params *types.CreateUserRequestBody) (*models.User, error) {
	user := models.User{Name: params.Name, Email: params.Email}
	d := db.GetDb()
	if err := d.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, DataAlreadyExists("user with email %s already exists", params.Email)
		}
		return nil, err
	}
	return &user, nil
}

func UpdateUser(id uint, params *types.UpdateUserRequestBody) (*models.User, error) {
	d := db.GetDb()
	var user models.User
	if err := d.Where(&models.User{ID: id}).First(&user).Error; err != nil {
		return nil, asNotFound(err, "user with id = %d does not exist", id)
	}
	if params.Name != nil {
		user.Name = *params.Name
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if err := d.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, DataAlreadyExists("user with email %s already exists", user.Email)
		}
		return nil, err
	}
	return &user, nil
}

func GetUser(id uint) (*models.User, error) {
	d := db.GetDb()
	var user models.User
	if err := d.Where(&models.User{ID: id}).First(&user).Error; err != nil {
		return nil, asNotFound(err, "user with id = %d does not exist", id)
	}
	return &user, nil
}

func GetAllUsers() ([]models.User, error) {
	d := db.GetDb()
	var users []models.User
	if err := d.Order("id asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func DeleteUser(id uint) error {
	d := db.GetDb()
	return d.Delete(&models.User{}, id).Error
}

func checkUserExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return DataNotFound("user with id = %d does not exist", id)
	}
	return nil
}

func ToUserResponse(user *models.User) *types.APIResponseUser {
	return &types.APIResponseUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

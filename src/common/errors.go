package common

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

// AppError Business-rule failure carrying the HTTP status it maps to.
type AppError struct {
	Status int
	Msg    string
}

func (e *AppError) Error() string { return e.Msg }

func DataNotFound(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusNotFound, Msg: fmt.Sprintf(format, args...)}
}

func WrongOwner(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusNotFound, Msg: fmt.Sprintf(format, args...)}
}

func WrongDate(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func SelfBooking(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusNotFound, Msg: fmt.Sprintf(format, args...)}
}

func UnavailableItem(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func AlreadyApproved(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func WrongAuthor(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, Msg: fmt.Sprintf(format, args...)}
}

// DataAlreadyExists Duplicate email keeps the historical 500 mapping for compatibility.
func DataAlreadyExists(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Msg: fmt.Sprintf(format, args...)}
}

// asNotFound Converts a gorm record-not-found into a 404 AppError, passes anything else through.
func asNotFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return DataNotFound(format, args...)
	}
	return err
}

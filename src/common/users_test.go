package common

import (
	"net/http"
	"testing"

	"shareit/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetUser(t *testing.T) {
	newTestDB(t)

	created := newTestUser(t, "Alice", "alice@example.com")
	assert.NotZero(t, created.ID)

	got, err := GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	newTestDB(t)

	newTestUser(t, "Alice", "alice@example.com")
	_, err := CreateUser(&types.CreateUserRequestBody{Name: "Other", Email: "alice@example.com"})
	require.Error(t, err)

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestUpdateUserKeepsOmittedFields(t *testing.T) {
	newTestDB(t)

	user := newTestUser(t, "Alice", "alice@example.com")

	name := "Alicia"
	updated, err := UpdateUser(user.ID, &types.UpdateUserRequestBody{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	email := "alicia@example.com"
	updated, err = UpdateUser(user.ID, &types.UpdateUserRequestBody{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "alicia@example.com", updated.Email)
}

func TestUpdateUnknownUser(t *testing.T) {
	newTestDB(t)

	name := "Nobody"
	_, err := UpdateUser(42, &types.UpdateUserRequestBody{Name: &name})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestDeleteUser(t *testing.T) {
	newTestDB(t)

	user := newTestUser(t, "Alice", "alice@example.com")
	require.NoError(t, DeleteUser(user.ID))

	_, err := GetUser(user.ID)
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

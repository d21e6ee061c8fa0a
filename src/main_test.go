package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shareit/src/db"
	"shareit/src/middlewares"
	"shareit/src/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type TestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Router *gin.Engine
}

func (s *TestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	d, err := gorm.Open(sqlite.Open("file:mainsuite?mode=memory&cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("An error '%s' was not expected when opening the test database", err)
	}
	if err := d.AutoMigrate(
		&models.User{},
		&models.ItemRequest{},
		&models.Item{},
		&models.Booking{},
		&models.Comment{},
	); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	db.NewDB(d)
	s.DB = d

	router := setupRouter()
	mountRoutes(router)
	s.Router = router
}

func (s *TestSuite) TearDownSuite() {
	inner, err := s.DB.DB()
	if err != nil {
		log.Printf("Error accessing inner db instance: %s\n", err.Error())
		return
	}
	inner.Close()
}

func (s *TestSuite) request(method, target string, body any, userId uint) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		rbytes, err := json.Marshal(body)
		assert.Nil(s.T(), err)
		reader = strings.NewReader(string(rbytes))
	}
	req, err := http.NewRequest(method, target, reader)
	assert.Nil(s.T(), err)
	if userId > 0 {
		req.Header.Set(middlewares.UserIDHeader, fmt.Sprintf("%d", userId))
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TestSuite) createUser(name, email string) uint {
	w := s.request("POST", "/users", map[string]any{"name": name, "email": email}, 0)
	assert.Equal(s.T(), 200, w.Code)
	return uint(gjson.Get(w.Body.String(), "id").Uint())
}

func (s *TestSuite) createItem(ownerId uint, name, description string) uint {
	w := s.request("POST", "/items", map[string]any{
		"name":        name,
		"description": description,
		"available":   true,
	}, ownerId)
	assert.Equal(s.T(), 200, w.Code)
	return uint(gjson.Get(w.Body.String(), "id").Uint())
}

func (s *TestSuite) TestPingRoute() {
	w := s.request("GET", "/", nil, 0)
	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestUserRoutes() {
	s.Run("Should create and fetch a user", func() {
		id := s.createUser("Alice", "alice@shareit.test")

		w := s.request("GET", fmt.Sprintf("/users/%d", id), nil, 0)
		assert.Equal(s.T(), 200, w.Code)
		sjson := w.Body.String()
		assert.Equal(s.T(), "Alice", gjson.Get(sjson, "name").String())
		assert.Equal(s.T(), "alice@shareit.test", gjson.Get(sjson, "email").String())
	})

	s.Run("Should return 500 on duplicate email", func() {
		s.createUser("Bob", "bob@shareit.test")

		w := s.request("POST", "/users", map[string]any{"name": "Bobby", "email": "bob@shareit.test"}, 0)
		assert.Equal(s.T(), 500, w.Code)
		assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should return 404 for an unknown user", func() {
		w := s.request("GET", "/users/9999", nil, 0)
		assert.Equal(s.T(), 404, w.Code)
	})
}

func (s *TestSuite) TestIdentityHeader() {
	w := s.request("GET", "/items", nil, 0)
	assert.Equal(s.T(), 400, w.Code)
	assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())

	req, _ := http.NewRequest("GET", "/items", nil)
	req.Header.Set(middlewares.UserIDHeader, "notanumber")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	assert.Equal(s.T(), 400, rec.Code)
}

func (s *TestSuite) TestBookingFlow() {
	ownerId := s.createUser("Owner", "owner@shareit.test")
	bookerId := s.createUser("Booker", "booker@shareit.test")
	itemId := s.createItem(ownerId, "drill", "a power drill")

	var bookingId uint
	s.Run("Should create a booking in WAITING state", func() {
		w := s.request("POST", "/bookings", map[string]any{
			"itemId": itemId,
			"start":  time.Now().Add(24 * time.Hour).Format(time.RFC3339),
			"end":    time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		}, bookerId)
		assert.Equal(s.T(), 200, w.Code)
		sjson := w.Body.String()
		assert.Equal(s.T(), "WAITING", gjson.Get(sjson, "status").String())
		bookingId = uint(gjson.Get(sjson, "id").Uint())
		assert.NotZero(s.T(), bookingId)
	})

	s.Run("Should reject a non-boolean approved parameter", func() {
		w := s.request("PATCH", fmt.Sprintf("/bookings/%d?approved=maybe", bookingId), nil, ownerId)
		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should approve once and refuse a second approval", func() {
		w := s.request("PATCH", fmt.Sprintf("/bookings/%d?approved=true", bookingId), nil, ownerId)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), "APPROVED", gjson.Get(w.Body.String(), "status").String())

		w = s.request("PATCH", fmt.Sprintf("/bookings/%d?approved=true", bookingId), nil, ownerId)
		assert.Equal(s.T(), 400, w.Code)
		assert.NotEmpty(s.T(), gjson.Get(w.Body.String(), "error").String())
	})

	s.Run("Should list bookings for the booker", func() {
		w := s.request("GET", "/bookings?state=ALL", nil, bookerId)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "#").Int())

		w = s.request("GET", "/bookings/owner", nil, ownerId)
		assert.Equal(s.T(), 200, w.Code)
		assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "#").Int())
	})

	s.Run("Should reject an unsupported state", func() {
		w := s.request("GET", "/bookings?state=SOMEDAY", nil, bookerId)
		assert.Equal(s.T(), 400, w.Code)
		assert.Equal(s.T(), "Unknown state: UNSUPPORTED_STATUS", gjson.Get(w.Body.String(), "error").String())
	})
}

func (s *TestSuite) TestItemSearchRoute() {
	ownerId := s.createUser("Seller", "seller@shareit.test")
	s.createItem(ownerId, "ladder", "a sturdy step ladder")

	w := s.request("GET", "/items/search?text=ladder", nil, ownerId)
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), int64(1), gjson.Get(w.Body.String(), "#").Int())

	w = s.request("GET", "/items/search?text=", nil, ownerId)
	assert.Equal(s.T(), 200, w.Code)
	assert.Equal(s.T(), int64(0), gjson.Get(w.Body.String(), "#").Int())
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}

package main

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"shareit/src/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type bookingRequestBody struct {
	ItemID uint      `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required,futuredate"`
	End    time.Time `json:"end" binding:"required,futuredate"`
}

type itemRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *uint  `json:"requestId"`
}

type commentRequestBody struct {
	Text string `json:"text" binding:"required"`
}

type itemRequestBoardBody struct {
	Description string `json:"description" binding:"required"`
}

type userRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type bookingListQuery struct {
	State string `form:"state,default=ALL"`
	From  int    `form:"from,default=1" binding:"min=1"`
	Size  int    `form:"size,default=20" binding:"min=1,max=20"`
}

type requestListQuery struct {
	From int `form:"from,default=0" binding:"min=0"`
	Size int `form:"size,default=20" binding:"min=1,max=20"`
}

// validateJSONBody Reads the raw body, binds and validates it, and hands the
// original bytes back so the forwarded payload stays byte-identical.
func validateJSONBody(ctx *gin.Context, obj any) ([]byte, bool) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if err := binding.JSON.BindBody(body, obj); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func rawBody(ctx *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func mountRoutes(router *gin.Engine) {
	userRoutes(router.Group(""))

	identified := router.Group("")
	identified.Use(middlewares.Identity)
	bookingRoutes(identified)
	itemRoutes(identified)
	requestRoutes(identified)
}

func bookingRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body bookingRequestBody
			raw, ok := validateJSONBody(ctx, &body)
			if !ok {
				return
			}
			proxy(ctx, raw)
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			if _, err := strconv.ParseBool(ctx.Query("approved")); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "query parameter approved must be a boolean"})
				return
			}
			proxy(ctx, nil)
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			proxy(ctx, nil)
		}).
		GET("/bookings", func(ctx *gin.Context) {
			var query bookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			proxy(ctx, nil)
		}).
		GET("/bookings/owner", func(ctx *gin.Context) {
			var query bookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			proxy(ctx, nil)
		})
	return g
}

func itemRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/items", func(ctx *gin.Context) {
			var body itemRequestBody
			raw, ok := validateJSONBody(ctx, &body)
			if !ok {
				return
			}
			proxy(ctx, raw)
		}).
		PATCH("/items/:id", func(ctx *gin.Context) {
			raw, ok := rawBody(ctx)
			if !ok {
				return
			}
			proxy(ctx, raw)
		}).
		GET("/items/:id", func(ctx *gin.Context) {
			proxy(ctx, nil)
		}).
		GET("/items", func(ctx *gin.Context) {
			var query bookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			proxy(ctx, nil)
		}).
		GET("/items/search", func(ctx *gin.Context) {
			var query bookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			proxy(ctx, nil)
		}).
		POST("/items/:id/comment", func(ctx *gin.Context) {
			var body commentRequestBody
			raw, ok := validateJSONBody(ctx, &body)
			if !ok {
				return
			}
			proxy(ctx, raw)
		})
	return g
}

func requestRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests", func(ctx *gin.Context) {
			var body itemRequestBoardBody
			raw, ok := validateJSONBody(ctx, &body)
			if !ok {
				return
			}
			proxy(ctx, raw)
		}).
		GET("/requests", func(ctx *gin.Context) {
			proxy(ctx, nil)
		}).
		GET("/requests/all", func(ctx *gin.Context) {
			var query requestListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			proxy(ctx, nil)
		}).
		GET("/requests/:id", func(ctx *gin.Context) {
			proxy(ctx, nil)
		})
	return g
}

func userRoutes(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/users", func(ctx *gin.Context) {
			var body userRequestBody
			raw, ok := validateJSONBody(ctx, &body)
			if !ok {
				return
			}
			proxy(ctx, raw)
		}).
		PATCH("/users/:id", func(ctx *gin.Context) {
			raw, ok := rawBody(ctx)
			if !ok {
				return
			}
			proxy(ctx, raw)
		}).
		GET("/users", func(ctx *gin.Context) {
			proxy(ctx, nil)
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			proxy(ctx, nil)
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			proxy(ctx, nil)
		})
	return g
}

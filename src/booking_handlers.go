package main

import (
	"net/http"
	"strconv"

	"shareit/src/common"
	"shareit/src/types"

	"github.com/gin-gonic/gin"
)

func bookingHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := common.CreateBooking(userId, &body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToBookingResponse(booking))
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			approved, err := strconv.ParseBool(ctx.Query("approved"))
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "query parameter approved must be a boolean"})
				return
			}
			booking, err := common.ChangeBookingStatus(params.ID, userId, approved)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToBookingResponse(booking))
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			booking, err := common.GetBooking(params.ID, userId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToBookingResponse(booking))
		}).
		GET("/bookings", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var query types.BookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bookings, err := common.ListBookingsByBooker(userId, query.State, query.From, query.Size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, toBookingResponses(bookings))
		}).
		GET("/bookings/owner", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var query types.BookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			bookings, err := common.ListBookingsByOwner(userId, query.State, query.From, query.Size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, toBookingResponses(bookings))
		})
	return g
}

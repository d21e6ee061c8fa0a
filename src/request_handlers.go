package main

import (
	"net/http"
	"time"

	"shareit/src/common"
	"shareit/src/types"

	"github.com/gin-gonic/gin"
)

func requestHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/requests", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.CreateItemRequestBoardBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, err := common.CreateItemRequest(userId, &body, time.Now())
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, types.APIResponseItemRequest{
				ID:          request.ID,
				Description: request.Description,
				Created:     request.Created,
				Items:       []types.APIResponseItem{},
			})
		}).
		GET("/requests", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			requests, err := common.GetOwnItemRequests(userId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, requests)
		}).
		GET("/requests/all", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var query struct {
				From int `form:"from,default=0"`
				Size int `form:"size,default=20"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			requests, err := common.GetOtherUsersItemRequests(userId, query.From, query.Size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, requests)
		}).
		GET("/requests/:id", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			request, err := common.GetItemRequest(params.ID, userId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, request)
		})
	return g
}

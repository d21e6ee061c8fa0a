package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shareit/src/common"
	"shareit/src/lib"
	"shareit/src/types"

	"github.com/gin-gonic/gin"
)

func itemHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/items", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var body types.CreateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := common.CreateItem(userId, &body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToItemResponse(item))
		}).
		PATCH("/items/:id", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateItemRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := common.UpdateItem(userId, params.ID, &body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToItemResponse(item))
		}).
		GET("/items/:id", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			item, err := common.GetItemAnnotated(params.ID, userId)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, item)
		}).
		GET("/items", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var query types.BookingListQuery
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			items, err := common.GetAllItemsByUser(userId, query.From, query.Size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, items)
		}).
		GET("/items/search", func(ctx *gin.Context) {
			var query struct {
				Text string `form:"text"`
				From int    `form:"from,default=1"`
				Size int    `form:"size,default=20"`
			}
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cacheKey := fmt.Sprintf("search:%s:%d:%d", strings.ToLower(query.Text), query.From, query.Size)
			if rd := lib.GetRedisClient(); rd != nil {
				if val, err := rd.Get(ctx, cacheKey).Result(); err == nil {
					ctx.Data(http.StatusOK, "application/json; charset=utf-8", []byte(val))
					return
				}
			}
			items, err := common.SearchItems(query.Text, query.From, query.Size)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			res := make([]*types.APIResponseItem, 0, len(items))
			for i := range items {
				res = append(res, common.ToItemResponse(&items[i]))
			}
			if rd := lib.GetRedisClient(); rd != nil {
				if payload, err := json.Marshal(res); err == nil {
					rd.Set(ctx, cacheKey, payload, 30*time.Second)
				}
			}
			ctx.JSON(http.StatusOK, res)
		}).
		POST("/items/:id/comment", func(ctx *gin.Context) {
			userId := ctx.GetUint("id")
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.CreateCommentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			comment, err := common.CreateComment(userId, params.ID, &body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToCommentResponse(comment))
		})
	return g
}

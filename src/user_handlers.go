package main

import (
	"net/http"

	"shareit/src/common"
	"shareit/src/types"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup) *gin.RouterGroup {
	g.
		POST("/users", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := common.CreateUser(&body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToUserResponse(user))
		}).
		GET("/users", func(ctx *gin.Context) {
			users, err := common.GetAllUsers()
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			res := make([]*types.APIResponseUser, 0, len(users))
			for i := range users {
				res = append(res, common.ToUserResponse(&users[i]))
			}
			ctx.JSON(http.StatusOK, res)
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := common.GetUser(params.ID)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToUserResponse(user))
		}).
		PATCH("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			user, err := common.UpdateUser(params.ID, &body)
			if err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, common.ToUserResponse(user))
		}).
		DELETE("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := common.DeleteUser(params.ID); err != nil {
				abortWithError(ctx, err)
				return
			}
			ctx.Status(http.StatusOK)
		})
	return g
}

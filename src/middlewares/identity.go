package middlewares

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UserIDHeader The caller identity token. Trusted as-is, resolution against an
// auth provider is out of scope.
const UserIDHeader = "X-Sharer-User-Id"

func Identity(ctx *gin.Context) {
	raw := ctx.GetHeader(UserIDHeader)
	if raw == "" {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing X-Sharer-User-Id header"})
		return
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid X-Sharer-User-Id header"})
		return
	}
	ctx.Set("id", uint(id))
}

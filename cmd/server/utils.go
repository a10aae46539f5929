package main

import (
	"github.com/gin-gonic/gin"
)

func tryBindParams(ctx *gin.Context, obj any) (ok bool) {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		ctx.JSON(422, map[string]any{
			"error":   ErrBadFormat,
			"details": err.Error(),
		})
		return false
	}
	return true
}

func abortWith(ctx *gin.Context, code int, errName string, err error) {
	ctx.JSON(code, map[string]any{
		"error":   errName,
		"details": err.Error(),
	})
}

// Copyright: This file is part of tesseract, released under https://github.com/tesseract-graph/tesseract/blob/main/LICENSE

package rest

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
)

// WebProfile enables the pprof endpoints under /debug/pprof. Call at most once per router.
func WebProfile(router *gin.Engine) { pprof.Register(router) }

package handler

import (
	"strings"

	"MotivationGenerator/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// DefaultPrefix is the prefix the @Router annotations are written against.
const DefaultPrefix = "/motivation"

var baseSwaggerTemplate = docs.SwaggerInfo.SwaggerTemplate

// RegisterRoutes mounts the meta routes at the root and both variants'
// upload/generate routes under prefix. The swagger document is rewritten to
// the same prefix.
func RegisterRoutes(r *gin.Engine, h *MotivationHandler, prefix string) {
	relocateDocs(prefix)

	r.GET("/", Home)
	r.GET("/healthz", Healthz)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	motivation := r.Group(prefix)
	{
		motivation.POST("/input", h.UploadInput)
		motivation.POST("/input_daily", h.UploadDailyInput)
		motivation.GET("/generate", h.Generate)
		motivation.GET("/generate_daily", h.GenerateDaily)
	}
}

func relocateDocs(prefix string) {
	prefix = "/" + strings.Trim(prefix, "/")
	if prefix == "/" {
		prefix = ""
	}
	docs.SwaggerInfo.SwaggerTemplate = strings.ReplaceAll(baseSwaggerTemplate, `"`+DefaultPrefix+`/`, `"`+prefix+`/`)
}

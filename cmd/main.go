package main

import (
	"github.com/gin-gonic/gin"

	"github.com/Liyanipatel27/learning-management-system-sub001/internal/app"
	"github.com/Liyanipatel27/learning-management-system-sub001/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}

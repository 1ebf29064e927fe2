package main

import (
	"github.com/Krasmol/platform-for-freelancers/config"
	"github.com/Krasmol/platform-for-freelancers/db"
	"github.com/Krasmol/platform-for-freelancers/middleware"
	"github.com/Krasmol/platform-for-freelancers/routes"
	"github.com/Krasmol/platform-for-freelancers/websocket"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	hub := websocket.NewHub()

	r := gin.Default()
	r.Use(middleware.CORS())
	routes.RegisterRoutes(r, hub)
	r.Run(":" + config.ServerPort)
}

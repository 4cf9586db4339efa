package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"schafkopf/internal/handler"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}
	runREPL()
}

func serve() {
	h := handler.New()

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/ping", func(c echo.Context) error {
		return c.String(200, "pong")
	})

	e.POST("/game", h.CreateGame)
	e.GET("/game/:id", h.GetGame)
	e.POST("/game/:id/declare", h.Declare)
	e.POST("/game/:id/play", h.Play)
	e.POST("/game/:id/restart", h.Restart)

	httpPort := os.Getenv("HTTP_PORT")
	if httpPort == "" {
		httpPort = "1337"
	}
	e.Logger.Fatal(e.Start(":" + httpPort))
}

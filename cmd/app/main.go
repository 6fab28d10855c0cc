package main

import (
	"blogpress/internal/app"
	"blogpress/pkg/config"
)

// @title           Blogpress API
// @version         1.0
// @description     Blog publishing API: admin accounts, cookie sessions and posts

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := a.Run(); err != nil {
		panic(err)
	}

	a.Wait()

	if err := a.Shutdown(); err != nil {
		panic(err)
	}
}

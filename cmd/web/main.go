package main

import (
	"apptrack/internal/app"
)

func main() {
	app.Run()
}

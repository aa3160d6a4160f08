package main

import "hirelane_backend/internal/app"

func main() {
	app.Run()
}

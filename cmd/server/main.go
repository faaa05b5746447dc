package main

import (
	"os"

	"chatbuilder/backend/internal/app"
)

func main() {
	os.Exit(app.Run())
}

package main

import (
	"os"

	"openventure/cmd/handlers"
	"openventure/internal/logger"
)

func main() {
	logger.Init(os.Getenv("DEBUG") != "")
	handlers.Execute()
}

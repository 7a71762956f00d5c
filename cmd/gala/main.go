package main

import (
	"os"

	"horse.fit/gala/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}

package main

import (
	"os"

	"github.com/linkshelf/linkshelf/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}

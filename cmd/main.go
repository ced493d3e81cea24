package main

import (
	"log"

	"github.com/Mazen-wedaa/telegram-quizy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}

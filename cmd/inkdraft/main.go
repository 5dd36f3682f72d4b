package main

import (
	"log"

	"github.com/inkdraft/inkdraft/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}

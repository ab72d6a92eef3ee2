package main

import (
	"log"
	"os"
	"strconv"

	"papertrade/cmd"
)

func main() {
	port := 3009
	if p := os.Getenv("PAPERTRADE_PORT"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			log.Fatalf("invalid PAPERTRADE_PORT %q: %v", p, err)
		}
		port = parsed
	}

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	err = apiHandler.StartApi(port)
	if err != nil {
		log.Fatal(err)
	}
}

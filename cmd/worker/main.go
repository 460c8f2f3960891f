package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker <ping|fetch>")
	}

	var err error
	switch os.Args[1] {
	case "ping":
		err = RunPing(os.Args[2:])
	case "fetch":
		err = RunFetch(os.Args[2:], os.Stdout)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}

	if err != nil {
		log.Fatal(err)
	}
}

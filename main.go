package main

import (
	"flag"
	"log"

	"github.com/casetrail/casetrail-backend/cmd"
)

var apiVersion = "dev"

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run database migrations")
	shouldRunServer := flag.Bool("server", false, "Run the http server")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(apiVersion); err != nil {
			log.Fatal(err)
		}
	}
	if !*shouldRunMigrations && !*shouldRunServer {
		log.Fatal("specify at least one of -migrations or -server")
	}
}

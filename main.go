package main

import (
	"log"

	"recipe-server/confs"
	"recipe-server/db"
	"recipe-server/server"
	"recipe-server/sessions"
)

func main() {
	// load config
	err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// connect to database Postgres
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	// sessions live in memory and end with the process
	store := sessions.NewStore(confs.SessionTTL())

	// run server
	srv := server.NewServer(database, store, confs.ServerAddr())
	srv.Start()
}

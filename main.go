package main

import (
	"fmt"
	"log"

	"Inspection_Tracker_Backend/config"
	"Inspection_Tracker_Backend/db"
	"Inspection_Tracker_Backend/router"
)

func main() {
	config.Load()

	conn, err := db.Connect()
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}
	repo := db.NewRepo(conn)

	r := router.Setup(repo, config.C.StaticDir)
	addr := fmt.Sprintf(":%s", config.C.AppPort)
	log.Printf("listening on %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}

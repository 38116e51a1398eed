package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("First Connect portal running on http://localhost%s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %s", err)
	}
}

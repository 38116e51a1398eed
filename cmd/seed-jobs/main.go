// Command seed-jobs installs the starter listings into the configured
// Postgres database. It is a no-op when the catalog already has jobs.
package main

import (
	"context"
	"log"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/database"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/model"
	"github.com/dhasan111-hiringdock/FIrstconnect/internal/store"
)

func main() {
	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	st := store.NewGorm(db)
	if err := st.SeedJobs(context.Background(), model.StarterJobs); err != nil {
		log.Fatal("failed to seed starter jobs: ", err)
	}

	log.Println("starter jobs installed")
}

// Command clean-db empties the portal tables and restarts their id
// sequences. Intended for staging resets; refuses to run without the
// -yes flag.
package main

import (
	"flag"
	"log"

	"github.com/dhasan111-hiringdock/FIrstconnect/internal/database"
)

func main() {
	confirmed := flag.Bool("yes", false, "actually truncate the jobs and applications tables")
	flag.Parse()

	if !*confirmed {
		log.Fatal("refusing to truncate without -yes")
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}

	if err := db.Exec("TRUNCATE TABLE jobs, applications RESTART IDENTITY").Error; err != nil {
		log.Fatal("failed to truncate tables: ", err)
	}

	log.Println("portal tables truncated")
}

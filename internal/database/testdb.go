package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/docker/go-connections/nat"
	// Register the "postgres" driver for the raw bootstrap connection.
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

var (
	testDBInstance *DBinstanceStruct
	teardown       func(context.Context) error
)

// GetTestDB starts a PostgreSQL test container and returns a teardown
// function, the migrated DB instance, and any error encountered during setup.
// Repeated calls within one test binary reuse the same container.
func GetTestDB() (func(context.Context) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	var (
		dbName = "portal"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort.Port(), dbUser, dbPwd, dbName)

	// Sanity-check the container with a raw connection before handing the DSN
	// to GORM.
	raw, err := sql.Open("postgres", dsn)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}
	pingErr := raw.PingContext(context.Background())
	if err := raw.Close(); err != nil {
		log.Println("failed to close bootstrap connection:", err)
	}
	if pingErr != nil {
		return dbContainer.Terminate, nil, pingErr
	}

	db, err := NewDBInstance(&DBConfig{
		useConstr: true,
		Constr:    dsn,
	})
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

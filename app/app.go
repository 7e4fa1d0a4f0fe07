package app

import (
	"log"
	"os"
	"os/signal"
	"rfp-management-api/internal/controller"
	"rfp-management-api/internal/extract"
	"rfp-management-api/internal/repo"
	"rfp-management-api/internal/service"
	"rfp-management-api/pkg/http_server"
	"rfp-management-api/pkg/postgres"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	_ "github.com/lib/pq"
)

func rfpTablesExist(pg *postgres.Postgres) (bool, error) {
	if err := pg.Database.Ping(); err != nil {
		return false, err
	}

	var id uuid.UUID
	err := pg.Database.QueryRow("select id from rfp limit 1").Scan(&id)

	return err == nil, nil
}

func migrateTables(driver database.Driver, sourceUrl string, databaseName string) {
	migrations, err := migrate.NewWithDatabaseInstance(sourceUrl, databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func runMigrations(postgresDB *postgres.Postgres, driver database.Driver, databaseName string) {
	tablesExist, err := rfpTablesExist(postgresDB)
	if err != nil {
		log.Fatal(err)
	}

	if !tablesExist {
		migrateTables(driver, "file://migrations/rfp-migrations", databaseName)
	}
}

// newExtractor picks the extraction strategy once at startup: the OpenAI
// path when a key is configured, the deterministic parser otherwise. The
// services keep the deterministic parser as fallback either way.
func newExtractor() extract.Extractor {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("No OpenAI key, using deterministic extraction")
		return extract.NewPatternExtractor()
	}

	log.Println("Using OpenAI extraction with deterministic fallback")

	return extract.NewOpenAIExtractor(apiKey, os.Getenv("OPENAI_MODEL"))
}

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	serverAddressEnv := os.Getenv("SERVER_ADDRESS")
	dbConnEnv := os.Getenv("POSTGRES_CONN")
	databaseEnv := os.Getenv("POSTGRES_DATABASE")

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(dbConnEnv)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseEnv})
	if err != nil {
		log.Fatal(err)
	}
	runMigrations(postgresDB, driver, databaseEnv)

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, newExtractor())
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services)

	log.Println("Starting server...")
	httpServer := http_server.New(handler, serverAddressEnv)

	log.Println("Ready to process requests...")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Fatal("Notify error: ", err)
	}

	log.Println("Shutting down...")
	err = httpServer.Shutdown()
	if err != nil {
		log.Fatal("Shutdown error: ", err)
	} else {
		log.Println("Successful shutdown")
	}
}

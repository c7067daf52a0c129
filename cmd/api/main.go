package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"customer-account-backend/internal/account"
	"customer-account-backend/internal/config"
)

// schema is applied at startup. The UNIQUE constraint on email is the
// authority for uniqueness; the service-level pre-check is only a fast path.
const schema = `CREATE TABLE IF NOT EXISTS customer_accounts (
	"accountId"   UUID PRIMARY KEY,
	"firstName"   VARCHAR(255) NOT NULL,
	"lastName"    VARCHAR(255) NOT NULL,
	email         VARCHAR(255) NOT NULL UNIQUE,
	"phoneNumber" VARCHAR(20),
	address       VARCHAR(500),
	city          VARCHAR(100),
	state         VARCHAR(100),
	country       VARCHAR(100),
	"dateCreated" TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	app.Use(logger.New())
	setupCORS(app)

	var repo account.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()

		if _, err := db.Exec(schema); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
		repo = account.NewPostgresRepository(db)
	} else {
		log.Println("DATABASE_URL not set, using in-memory repository")
		repo = account.NewInMemoryRepository(nil)
	}

	service := account.NewService(repo)
	handler := account.NewHandler(service)
	handler.RegisterRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	return db
}

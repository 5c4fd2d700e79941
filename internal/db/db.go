package db

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-exchange/campusmarket/internal/config"
)

var Conn *pgxpool.Pool

// Init connects to Postgres and bootstraps the listing tables.
func Init(cfg config.App) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
	)

	var err error
	Conn, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err = Conn.Ping(context.Background()); err != nil {
		log.Fatalf("Unable to ping database: %v\n", err)
	}

	log.Println("Connected to Postgres successfully")

	ensureProductsTable()
	ensureServicesTable()
}

// ensureProductsTable creates the products table and its browse indexes if missing
func ensureProductsTable() {
	ctx := context.Background()
	_, err := Conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NULL,
            price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
            category TEXT NOT NULL CHECK (category IN ('stationary','electronics','furniture','lab_equipment')),
            type TEXT NOT NULL CHECK (type IN ('sell','rent')),
            condition TEXT NULL CHECK (condition IN ('like_new','good','fair')),
            duration_days INTEGER NULL CHECK (duration_days > 0),
            image_url TEXT NULL,
            is_available BOOLEAN NOT NULL DEFAULT TRUE,
            rented_at TIMESTAMP WITH TIME ZONE NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_products_type_created ON products(type, created_at DESC);
        CREATE INDEX IF NOT EXISTS idx_products_available ON products(is_available);
    `)
	if err != nil {
		log.Printf("failed to ensure products table: %v", err)
	}
}

// ensureServicesTable creates the services table ordered around the calendar queries
func ensureServicesTable() {
	ctx := context.Background()
	_, err := Conn.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS services (
            id UUID PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NULL,
            category TEXT NOT NULL CHECK (category IN ('teaching','assignments','editing','photography','designing','party_prep')),
            price NUMERIC(10,2) NULL CHECK (price >= 0),
            available_date DATE NOT NULL,
            start_time TEXT NOT NULL,
            end_time TEXT NOT NULL,
            is_available BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
        );
        CREATE INDEX IF NOT EXISTS idx_services_available_date ON services(available_date);
    `)
	if err != nil {
		log.Printf("failed to ensure services table: %v", err)
	}
}

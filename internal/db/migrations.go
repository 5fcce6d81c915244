package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'vehicle_status') THEN
			CREATE TYPE vehicle_status AS ENUM ('Available', 'OnTrip', 'InShop', 'Retired');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'driver_status') THEN
			CREATE TYPE driver_status AS ENUM ('OnDuty', 'OffDuty', 'OnTrip', 'Suspended');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'trip_status') THEN
			CREATE TYPE trip_status AS ENUM ('Draft', 'Dispatched', 'Completed', 'Cancelled');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'maintenance_status') THEN
			CREATE TYPE maintenance_status AS ENUM ('Open', 'Closed');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		license_plate VARCHAR(32) NOT NULL,
		category VARCHAR(64),
		max_capacity_kg NUMERIC(12,2) NOT NULL,
		odometer NUMERIC(14,1) NOT NULL DEFAULT 0,
		acquisition_cost NUMERIC(16,2) NOT NULL DEFAULT 0,
		status vehicle_status NOT NULL DEFAULT 'Available',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicles_license_plate ON vehicles (license_plate);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status);`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		name VARCHAR(128) NOT NULL,
		license_number VARCHAR(64) NOT NULL,
		license_expiry DATE NOT NULL,
		phone VARCHAR(32),
		status driver_status NOT NULL DEFAULT 'OffDuty',
		safety_score NUMERIC(5,2) NOT NULL DEFAULT 0,
		total_trips INTEGER NOT NULL DEFAULT 0,
		completed_trips INTEGER NOT NULL DEFAULT 0,
		on_time_trips INTEGER NOT NULL DEFAULT 0,
		violations INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_drivers_license_number ON drivers (license_number);`,
	`CREATE INDEX IF NOT EXISTS idx_drivers_status ON drivers (status);`,
	`CREATE TABLE IF NOT EXISTS trips (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		driver_id UUID NOT NULL REFERENCES drivers(id),
		cargo_weight_kg NUMERIC(12,2) NOT NULL DEFAULT 0,
		distance_km NUMERIC(12,1) NOT NULL DEFAULT 0,
		revenue NUMERIC(16,2) NOT NULL DEFAULT 0,
		origin VARCHAR(255),
		destination VARCHAR(255),
		notes TEXT,
		start_odometer NUMERIC(14,1) NOT NULL DEFAULT 0,
		end_odometer NUMERIC(14,1),
		status trip_status NOT NULL DEFAULT 'Dispatched',
		scheduled_at TIMESTAMPTZ,
		completed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_trips_odometer CHECK (end_odometer IS NULL OR end_odometer >= start_odometer)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_vehicle_id ON trips (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_driver_id ON trips (driver_id);`,
	`CREATE INDEX IF NOT EXISTS idx_trips_status ON trips (status);`,
	`CREATE TABLE IF NOT EXISTS fuel_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		liters NUMERIC(10,2) NOT NULL,
		cost NUMERIC(14,2) NOT NULL,
		price_per_liter NUMERIC(10,4) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		odometer NUMERIC(14,1) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_logs_vehicle_id ON fuel_logs (vehicle_id);`,
	`CREATE TABLE IF NOT EXISTS maintenance_logs (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		description TEXT NOT NULL,
		cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		date TIMESTAMPTZ NOT NULL,
		status maintenance_status NOT NULL DEFAULT 'Open',
		closed_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_logs_vehicle_id ON maintenance_logs (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_maintenance_logs_status ON maintenance_logs (status);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

package store

import (
	"context"
	"fmt"
)

// Table bootstrap for local environments. Deliberately not a migration
// layer; every statement is CREATE TABLE IF NOT EXISTS.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS form_data_security (
		id BIGSERIAL PRIMARY KEY,
		numero TEXT NOT NULL,
		description TEXT NOT NULL,
		date TEXT,
		time TEXT,
		similar_issues TEXT,
		combien TEXT,
		name TEXT,
		location TEXT,
		alert_contacts TEXT[] NOT NULL DEFAULT '{}',
		securisation TEXT,
		immediate_actions TEXT,
		sorting_data TEXT,
		submission_time TIMESTAMPTZ NOT NULL,
		photos TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS form_data_machine_breakdown (
		id BIGSERIAL PRIMARY KEY,
		numero TEXT NOT NULL,
		description TEXT NOT NULL,
		date TEXT,
		time TEXT,
		similar_issues TEXT,
		combien TEXT,
		name TEXT,
		location TEXT,
		alert_contacts TEXT[] NOT NULL DEFAULT '{}',
		immediate_actions TEXT,
		sorting_data TEXT,
		submission_time TIMESTAMPTZ NOT NULL,
		photos TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS spc_measurement_batches (
		id BIGSERIAL PRIMARY KEY,
		piece_name TEXT,
		piece_reference TEXT,
		measurements TEXT
	)`,
}

func CreateTables(ctx context.Context, db Querier) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

package postgres

import (
	"fmt"

	"delivery-order/internal/adapters/out/postgres/orderrepo"
	"delivery-order/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// foreignKey is a named constraint added after the tables exist. The row
// structs carry no GORM associations, so every key is declared here.
type foreignKey struct {
	name     string
	table    string
	column   string
	refTable string
	onDelete string
}

var foreignKeys = []foreignKey{
	{name: "fk_orders_requester", table: "orders", column: "requester_id", refTable: "users", onDelete: "RESTRICT"},
	{name: "fk_products_order", table: "products", column: "id", refTable: "orders", onDelete: "CASCADE"},
	{name: "fk_transportations_order", table: "transportations", column: "id", refTable: "orders", onDelete: "CASCADE"},
	{name: "fk_destinations_order", table: "destinations", column: "id", refTable: "orders", onDelete: "CASCADE"},
	{name: "fk_receivers_destination", table: "receivers", column: "id", refTable: "destinations", onDelete: "CASCADE"},
	{name: "fk_departures_order", table: "departures", column: "id", refTable: "orders", onDelete: "CASCADE"},
	{name: "fk_senders_departure", table: "senders", column: "id", refTable: "departures", onDelete: "CASCADE"},
}

// Migrate creates or updates every table and its foreign keys. It is safe to
// run on every start.
func Migrate(db *gorm.DB) error {
	models := append([]any{&userrepo.UserDTO{}}, orderrepo.Models()...)
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	migrator := db.Migrator()
	for _, fk := range foreignKeys {
		if migrator.HasConstraint(fk.table, fk.name) {
			continue
		}

		err := db.Exec(fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (id) ON DELETE %s",
			fk.table, fk.name, fk.column, fk.refTable, fk.onDelete,
		)).Error
		if err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	return nil
}

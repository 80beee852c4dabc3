package database

import "database/sql"

// schema sets up the tables on startup. Receipts must exist before
// receipt_items and scan_history because of the foreign keys.
const schema = `
CREATE TABLE IF NOT EXISTS receipts (
    id TEXT PRIMARY KEY,
    restaurant TEXT NOT NULL,
    table_number TEXT NOT NULL,
    order_number TEXT NOT NULL,
    date TEXT NOT NULL,
    time_of_day TEXT NOT NULL,
    waiter TEXT NOT NULL,
    currency TEXT NOT NULL,
    subtotal DOUBLE PRECISION NOT NULL,
    vat_rate DOUBLE PRECISION NOT NULL,
    vat_printed_amount DOUBLE PRECISION NOT NULL,
    service_name TEXT NOT NULL,
    service_amount DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS receipt_items (
    receipt_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    quantity DOUBLE PRECISION NOT NULL,
    price DOUBLE PRECISION NOT NULL,
    sum DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (receipt_id, position),
    FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS scan_history (
    id TEXT PRIMARY KEY,
    device_id TEXT NOT NULL,
    receipt_id TEXT NOT NULL,
    restaurant TEXT NOT NULL,
    total DOUBLE PRECISION NOT NULL,
    currency TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    FOREIGN KEY (receipt_id) REFERENCES receipts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_receipt_items_receipt_id ON receipt_items(receipt_id);
CREATE INDEX IF NOT EXISTS idx_scan_history_device_id ON scan_history(device_id);
`

// Migrate runs the schema setup
func Migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

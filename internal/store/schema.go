package store

// Schema is additive only: every statement must be safe to run against an
// existing database.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
    id             INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    price          REAL NOT NULL,
    category       TEXT NOT NULL,
    brand          TEXT,
    icon_type      TEXT,
    selected_icon  TEXT,
    uploaded_image TEXT,
    stock          INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS categories (
    id          INTEGER PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    icon        TEXT
);

CREATE TABLE IF NOT EXISTS orders (
    id             INTEGER PRIMARY KEY,
    date           TEXT NOT NULL,
    total          REAL NOT NULL,
    change         REAL DEFAULT 0,
    total_paid     REAL DEFAULT 0,
    item_count     INTEGER DEFAULT 0,
    table_number   INTEGER DEFAULT 0,
    payment_method TEXT DEFAULT 'cash',
    ticket_path    TEXT,
    status         TEXT DEFAULT 'inProgress'
);

CREATE TABLE IF NOT EXISTS order_items (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id   INTEGER NOT NULL,
    product_id INTEGER NOT NULL,
    name       TEXT NOT NULL,
    price      REAL NOT NULL,
    quantity   INTEGER DEFAULT 1,
    category   TEXT,
    FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id);

CREATE TABLE IF NOT EXISTS tables (
    id               INTEGER PRIMARY KEY,
    name             TEXT NOT NULL,
    available        INTEGER DEFAULT 1,
    current_order_id INTEGER
);

CREATE TABLE IF NOT EXISTS users (
    id                 INTEGER PRIMARY KEY,
    name               TEXT NOT NULL,
    profile_picture    TEXT,
    pin                TEXT NOT NULL,
    pinned_product_ids TEXT
);

CREATE TABLE IF NOT EXISTS license (
    id                  INTEGER PRIMARY KEY CHECK (id = 1),
    key_hash            TEXT NOT NULL,
    email               TEXT NOT NULL,
    machine_fingerprint TEXT NOT NULL,
    activated_at        INTEGER NOT NULL,
    expires_at          INTEGER,
    is_active           INTEGER NOT NULL DEFAULT 1,
    license_type        TEXT NOT NULL
);
`

// ABOUTME: SQLite database schema for allergen tracking storage
// ABOUTME: Creates all tables and indexes for local storage
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Child profile singleton table
CREATE TABLE IF NOT EXISTS profiles (
    id TEXT PRIMARY KEY CHECK (id = 'profile'),
    name TEXT NOT NULL,
    birthdate TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    modified_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Allergens table (9 fixed rows, seeded at first run)
CREATE TABLE IF NOT EXISTS allergens (
    id TEXT PRIMARY KEY,
    kind TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    emoji TEXT NOT NULL,
    paused INTEGER NOT NULL DEFAULT 0,
    first_exposed_at TEXT,
    last_exposed_at TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    modified_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Feeding events table (one row per logged feeding attempt)
CREATE TABLE IF NOT EXISTS feeding_events (
    id TEXT PRIMARY KEY,
    allergen_kind TEXT NOT NULL REFERENCES allergens(kind),
    event_date TEXT NOT NULL,
    amount TEXT,
    had_reaction INTEGER NOT NULL DEFAULT 0,
    severity TEXT,
    notes TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    modified_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Settings singleton table
CREATE TABLE IF NOT EXISTS settings (
    id TEXT PRIMARY KEY CHECK (id = 'app-settings'),
    theme TEXT NOT NULL DEFAULT 'light',
    language TEXT NOT NULL DEFAULT 'en',
    notifications_enabled INTEGER NOT NULL DEFAULT 0,
    threshold_days INTEGER NOT NULL DEFAULT 7,
    notification_time TEXT NOT NULL DEFAULT '09:00',
    modified_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_events_kind ON feeding_events(allergen_kind);
CREATE INDEX IF NOT EXISTS idx_events_date ON feeding_events(event_date);
CREATE INDEX IF NOT EXISTS idx_events_reaction ON feeding_events(had_reaction);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1

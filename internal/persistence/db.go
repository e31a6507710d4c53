// Package persistence provides SQLite-based storage for allocation reports
// and simulation events.
package persistence

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/dominion/internal/sim"
	"github.com/talgya/dominion/internal/treasury"
)

// DB wraps a SQLite connection for simulation history storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS reports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cycle INTEGER NOT NULL,
		polity_id INTEGER NOT NULL,
		initial INTEGER NOT NULL,
		spent INTEGER NOT NULL,
		remaining INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		report_id INTEGER NOT NULL REFERENCES reports(id),
		category TEXT NOT NULL,
		target TEXT NOT NULL,
		cost INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cycle INTEGER NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sim_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_reports_cycle ON reports(cycle);
	CREATE INDEX IF NOT EXISTS idx_reports_polity ON reports(polity_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_report ON transactions(report_id);
	CREATE INDEX IF NOT EXISTS idx_events_cycle ON events(cycle);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveReport writes one allocation report and its transactions.
func (db *DB) SaveReport(r *treasury.AllocationReport) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO reports (cycle, polity_id, initial, spent, remaining)
		 VALUES (?, ?, ?, ?, ?)`,
		r.Cycle, r.PolityID, r.Initial, r.Spent(), r.Remaining,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	reportID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for _, t := range r.Transactions {
		_, err := tx.Exec(
			`INSERT INTO transactions (id, report_id, category, target, cost)
			 VALUES (?, ?, ?, ?, ?)`,
			t.ID.String(), reportID, t.Category, t.Target, t.Cost,
		)
		if err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}

	return tx.Commit()
}

// SaveEvents appends events to the database.
func (db *DB) SaveEvents(events []sim.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			"INSERT INTO events (cycle, description, category) VALUES (?, ?, ?)",
			e.Cycle, e.Description, e.Category,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveMeta stores a key-value pair in simulation metadata.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO sim_meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM sim_meta WHERE key = ?", key)
	return value, err
}

// SaveCycle persists everything one cycle produced: reports, events, and
// the cycle counter.
func (db *DB) SaveCycle(s *sim.Simulation) error {
	for _, r := range s.Reports {
		if err := db.SaveReport(r); err != nil {
			return fmt.Errorf("save report polity %d: %w", r.PolityID, err)
		}
	}
	// Only this cycle's events; older ones were saved on their own cycle.
	var fresh []sim.Event
	for _, e := range s.Events {
		if e.Cycle == s.LastTick {
			fresh = append(fresh, e)
		}
	}
	if err := db.SaveEvents(fresh); err != nil {
		return fmt.Errorf("save events: %w", err)
	}
	if err := db.SaveMeta("last_cycle", fmt.Sprintf("%d", s.LastTick)); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}
	slog.Debug("cycle persisted", "cycle", s.LastTick, "reports", len(s.Reports))
	return nil
}

// SpendRow summarizes historical spend for one polity and category.
type SpendRow struct {
	PolityID uint64 `db:"polity_id"`
	Category string `db:"category"`
	Total    int64  `db:"total"`
	Count    int    `db:"count"`
}

// SpendByCategory aggregates executed transactions across all saved cycles.
func (db *DB) SpendByCategory() ([]SpendRow, error) {
	var rows []SpendRow
	err := db.conn.Select(&rows, `
		SELECT r.polity_id AS polity_id, t.category AS category,
		       SUM(t.cost) AS total, COUNT(*) AS count
		FROM transactions t JOIN reports r ON r.id = t.report_id
		GROUP BY r.polity_id, t.category
		ORDER BY r.polity_id, total DESC`)
	return rows, err
}

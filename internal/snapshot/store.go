package snapshot

// #region imports
import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/barbelllab/liftsignal/internal/rules"
)

// #endregion

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS lift_snapshots (
	snapshot_id       TEXT PRIMARY KEY,
	lift              TEXT NOT NULL,
	primary_exercise  TEXT NOT NULL,
	observations_json TEXT NOT NULL,
	flags_json        TEXT NOT NULL,
	body_weight       REAL NOT NULL DEFAULT 0,
	experience        TEXT NOT NULL,
	equipment         TEXT NOT NULL,
	created_at        TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_lift_snapshots_lookup
ON lift_snapshots(lift, created_at);
`

// #endregion schema

// #region store-struct
// Store persists lifter snapshots in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region save
// Save inserts a snapshot, assigning an ID and timestamp when absent, and
// returns the stored record.
func (s *Store) Save(snap Snapshot) (Snapshot, error) {
	if snap.ID == "" {
		snap.ID = uuid.New().String()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	if snap.Flags == nil {
		snap.Flags = map[string]bool{}
	}

	obsJSON, err := json.Marshal(snap.Observations)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal observations: %w", err)
	}
	flagsJSON, err := json.Marshal(snap.Flags)
	if err != nil {
		return Snapshot{}, fmt.Errorf("marshal flags: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO lift_snapshots
		 (snapshot_id, lift, primary_exercise, observations_json, flags_json,
		  body_weight, experience, equipment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snap.ID, snap.Lift, snap.PrimaryExercise, string(obsJSON), string(flagsJSON),
		snap.BodyWeight, string(snap.Experience), string(snap.Equipment),
		snap.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}
	return snap, nil
}

// #endregion save

// #region get
// Get retrieves a snapshot by ID.
func (s *Store) Get(id string) (Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT snapshot_id, lift, primary_exercise, observations_json, flags_json,
		        body_weight, experience, equipment, created_at
		 FROM lift_snapshots WHERE snapshot_id = ?`, id,
	)
	snap, err := scanSnapshot(row)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return snap, nil
}

// #endregion get

// #region latest
// Latest returns the most recent snapshot for a lift.
func (s *Store) Latest(lift string) (Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT snapshot_id, lift, primary_exercise, observations_json, flags_json,
		        body_weight, experience, equipment, created_at
		 FROM lift_snapshots WHERE lift = ?
		 ORDER BY created_at DESC LIMIT 1`, lift,
	)
	snap, err := scanSnapshot(row)
	if err != nil {
		return Snapshot{}, fmt.Errorf("latest snapshot for %s: %w", lift, err)
	}
	return snap, nil
}

// #endregion latest

// #region list
// List returns the most recent snapshots for a lift, newest first. An empty
// lift matches all lifts.
func (s *Store) List(lift string, limit int) ([]Snapshot, error) {
	query := `SELECT snapshot_id, lift, primary_exercise, observations_json, flags_json,
	                 body_weight, experience, equipment, created_at
	          FROM lift_snapshots`
	args := []interface{}{}
	if lift != "" {
		query += ` WHERE lift = ?`
		args = append(args, lift)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// #endregion list

// #region scan

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var snap Snapshot
	var obsJSON, flagsJSON, experience, equipment, createdStr string

	err := row.Scan(&snap.ID, &snap.Lift, &snap.PrimaryExercise, &obsJSON, &flagsJSON,
		&snap.BodyWeight, &experience, &equipment, &createdStr)
	if err != nil {
		return Snapshot{}, err
	}

	if err := json.Unmarshal([]byte(obsJSON), &snap.Observations); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal observations: %w", err)
	}
	if err := json.Unmarshal([]byte(flagsJSON), &snap.Flags); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal flags: %w", err)
	}
	snap.Experience = rules.Experience(experience)
	snap.Equipment = rules.Equipment(equipment)
	snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)

	return snap, nil
}

// #endregion scan

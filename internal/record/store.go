package record

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kazusane/sortiebot/go-controller/internal/combat"
	"github.com/kazusane/sortiebot/go-controller/internal/decisive"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS battle_runs (
	run_id      TEXT PRIMARY KEY,
	plan_name   TEXT NOT NULL,
	mode        TEXT NOT NULL,
	flag        TEXT NOT NULL,
	grade       TEXT,
	node_count  INTEGER NOT NULL,
	ship_stats  TEXT NOT NULL,
	drops       TEXT,
	started_at  TEXT NOT NULL,
	finished_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS battle_events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id     TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	event_type TEXT NOT NULL,
	node       TEXT,
	from_state TEXT,
	to_state   TEXT,
	action     TEXT,
	grade      TEXT,
	enemies    TEXT,
	created_at TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES battle_runs(run_id)
);

CREATE TABLE IF NOT EXISTS campaign_progress (
	id         INTEGER PRIMARY KEY CHECK (id = 1),
	state_json TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct
// Store persists battle runs and the resumable campaign position in
// SQLite.
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
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
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

// #region save-result
// SaveResult stores one finished battle run with its event log.
func (s *Store) SaveResult(res *combat.Result) error {
	stats, err := json.Marshal(res.ShipStats)
	if err != nil {
		return fmt.Errorf("marshal ship stats: %w", err)
	}
	drops, err := json.Marshal(res.Drops)
	if err != nil {
		return fmt.Errorf("marshal drops: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO battle_runs (run_id, plan_name, mode, flag, grade, node_count, ship_stats, drops, started_at, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.Plan, string(res.Mode), string(res.Flag), string(res.Grade),
		res.NodeCount, string(stats), string(drops),
		res.Started.UTC().Format(time.RFC3339Nano), res.Finished.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if res.History != nil {
		for seq, ev := range res.History.Events() {
			enemies := ""
			if ev.Enemies != nil {
				raw, err := json.Marshal(ev.Enemies)
				if err != nil {
					return fmt.Errorf("marshal enemies: %w", err)
				}
				enemies = string(raw)
			}
			_, err = tx.Exec(
				`INSERT INTO battle_events (run_id, seq, event_type, node, from_state, to_state, action, grade, enemies, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				res.ID, seq, string(ev.Type), ev.Node, string(ev.From), string(ev.To),
				ev.Action, string(ev.Grade), enemies, ev.At.UTC().Format(time.RFC3339Nano),
			)
			if err != nil {
				return fmt.Errorf("insert event %d: %w", seq, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// #endregion save-result

// #region run-queries
// RunSummary is the stored header of one battle run.
type RunSummary struct {
	ID        string
	Plan      string
	Mode      combat.Mode
	Flag      combat.Flag
	Grade     combat.Grade
	NodeCount int
	Started   time.Time
}

// RecentRuns lists the newest runs first.
func (s *Store) RecentRuns(limit int) ([]RunSummary, error) {
	rows, err := s.db.Query(
		`SELECT run_id, plan_name, mode, flag, grade, node_count, started_at
		 FROM battle_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var mode, flag, grade, started string
		if err := rows.Scan(&r.ID, &r.Plan, &mode, &flag, &grade, &r.NodeCount, &started); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Mode = combat.Mode(mode)
		r.Flag = combat.Flag(flag)
		r.Grade = combat.Grade(grade)
		if r.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// PlanStats aggregates outcomes per plan.
type PlanStats struct {
	Plan      string
	Runs      int
	Successes int
	BestGrade combat.Grade
}

// StatsFor summarizes the stored runs of one plan.
func (s *Store) StatsFor(plan string) (PlanStats, error) {
	stats := PlanStats{Plan: plan}
	rows, err := s.db.Query(`SELECT flag, grade FROM battle_runs WHERE plan_name = ?`, plan)
	if err != nil {
		return stats, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var flag, grade string
		if err := rows.Scan(&flag, &grade); err != nil {
			return stats, fmt.Errorf("scan stats: %w", err)
		}
		stats.Runs++
		if combat.Flag(flag) == combat.FlagSuccess {
			stats.Successes++
		}
		g := combat.Grade(grade)
		if g.Known() && (!stats.BestGrade.Known() || g.AtLeast(stats.BestGrade)) {
			stats.BestGrade = g
		}
	}
	return stats, rows.Err()
}

// #endregion run-queries

// #region campaign-progress
// SaveProgress upserts the single resumable campaign position.
func (s *Store) SaveProgress(state *decisive.CampaignState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO campaign_progress (id, state_json, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET state_json = excluded.state_json, updated_at = excluded.updated_at`,
		string(raw), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}

// LoadProgress returns the saved campaign position, nil when none.
func (s *Store) LoadProgress() (*decisive.CampaignState, error) {
	var raw string
	err := s.db.QueryRow(`SELECT state_json FROM campaign_progress WHERE id = 1`).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	var state decisive.CampaignState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	return &state, nil
}

// ClearProgress removes the saved campaign position.
func (s *Store) ClearProgress() error {
	if _, err := s.db.Exec(`DELETE FROM campaign_progress WHERE id = 1`); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// #endregion campaign-progress

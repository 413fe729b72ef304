package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT NOT NULL,
        email TEXT UNIQUE NOT NULL,
        password_hash TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS scripts (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        text TEXT NOT NULL,
        goal TEXT NOT NULL,
        style TEXT,
        domain TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        status TEXT CHECK (status IN ('success', 'weak')),
        views TEXT,
        link TEXT,
        verified BOOLEAN DEFAULT FALSE,
        retention_analysis TEXT,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS patterns (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        type TEXT NOT NULL,
        hook_style TEXT NOT NULL,
        structure TEXT NOT NULL,
        pacing TEXT NOT NULL,
        persuasion_technique TEXT NOT NULL,
        verified_link TEXT,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS style_notes (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        user_id INTEGER NOT NULL,
        note TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// User methods
func (s *SQLiteStore) GetUserByEmail(email string) (*User, error) {
	var user User
	err := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?", email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) CreateUser(name, email, passwordHash string) (*User, error) {
	res, err := s.db.Exec("INSERT INTO users (name, email, password_hash) VALUES (?, ?, ?)", name, email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetUserByID(id)
}

func (s *SQLiteStore) GetUserByID(id int64) (*User, error) {
	var user User
	err := s.db.QueryRow("SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?", id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// Script methods
func (s *SQLiteStore) CreateScript(script *Script) error {
	script.ID = uuid.NewString()
	script.CreatedAt = time.Now()

	stmt, err := s.db.Prepare("INSERT INTO scripts (id, user_id, text, goal, style, domain, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare script insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(script.ID, script.UserID, script.Text, script.Goal, script.Style, script.Domain, script.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute script insert: %w", err)
	}
	return nil
}

const scriptColumns = "id, user_id, text, goal, style, domain, created_at, status, views, link, verified, retention_analysis"

func scanScript(row interface{ Scan(...any) error }) (*Script, error) {
	var script Script
	var style, domain, status, views, link, retention sql.NullString
	err := row.Scan(&script.ID, &script.UserID, &script.Text, &script.Goal, &style, &domain, &script.CreatedAt, &status, &views, &link, &script.Verified, &retention)
	if err != nil {
		return nil, err
	}
	script.Style = nullableString(style)
	script.Domain = nullableString(domain)
	script.Status = nullableString(status)
	script.Views = nullableString(views)
	script.Link = nullableString(link)
	script.RetentionAnalysis = nullableString(retention)
	return &script, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func (s *SQLiteStore) GetScriptByID(scriptID string, userID int64) (*Script, error) {
	row := s.db.QueryRow("SELECT "+scriptColumns+" FROM scripts WHERE id = ? AND user_id = ?", scriptID, userID)
	script, err := scanScript(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to get script: %w", err)
	}
	return script, nil
}

func (s *SQLiteStore) GetScriptsByUserID(userID int64) ([]Script, error) {
	rows, err := s.db.Query("SELECT "+scriptColumns+" FROM scripts WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scripts: %w", err)
	}
	defer rows.Close()

	var scripts []Script
	for rows.Next() {
		script, err := scanScript(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan script row: %w", err)
		}
		scripts = append(scripts, *script)
	}
	return scripts, nil
}

// EvaluationUpdate carries the outcome fields merged into a script once the
// user reports how the published video performed.
type EvaluationUpdate struct {
	Status            string
	Views             string
	Link              string
	Verified          bool
	RetentionAnalysis string
}

func (s *SQLiteStore) UpdateScriptEvaluation(scriptID string, userID int64, upd EvaluationUpdate) error {
	stmt, err := s.db.Prepare("UPDATE scripts SET status = ?, views = ?, link = ?, verified = ?, retention_analysis = ? WHERE id = ? AND user_id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare evaluation update: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(upd.Status, emptyAsNull(upd.Views), emptyAsNull(upd.Link), upd.Verified, emptyAsNull(upd.RetentionAnalysis), scriptID, userID)
	if err != nil {
		return fmt.Errorf("failed to execute evaluation update: %w", err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return fmt.Errorf("script not found or not owned by user, evaluation not updated")
	}
	return nil
}

func emptyAsNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Pattern methods
func (s *SQLiteStore) CreatePattern(pattern *SuccessPattern) error {
	pattern.ID = uuid.NewString()
	pattern.CreatedAt = time.Now()

	stmt, err := s.db.Prepare("INSERT INTO patterns (id, user_id, type, hook_style, structure, pacing, persuasion_technique, verified_link, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare pattern insert: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(pattern.ID, pattern.UserID, pattern.Type, pattern.HookStyle, pattern.Structure, pattern.Pacing, pattern.PersuasionTechnique, pattern.VerifiedLink, pattern.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute pattern insert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetPatternsByUserID(userID int64) ([]SuccessPattern, error) {
	rows, err := s.db.Query("SELECT id, user_id, type, hook_style, structure, pacing, persuasion_technique, verified_link, created_at FROM patterns WHERE user_id = ? ORDER BY created_at ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer rows.Close()

	var patterns []SuccessPattern
	for rows.Next() {
		var p SuccessPattern
		var link sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &p.Type, &p.HookStyle, &p.Structure, &p.Pacing, &p.PersuasionTechnique, &link, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pattern row: %w", err)
		}
		p.VerifiedLink = nullableString(link)
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// Style note methods
func (s *SQLiteStore) CreateStyleNote(userID int64, note string) (*StyleNote, error) {
	now := time.Now()
	res, err := s.db.Exec("INSERT INTO style_notes (user_id, note, created_at) VALUES (?, ?, ?)", userID, note, now)
	if err != nil {
		return nil, fmt.Errorf("failed to insert style note: %w", err)
	}
	id, _ := res.LastInsertId()
	return &StyleNote{ID: id, UserID: userID, Note: note, CreatedAt: now}, nil
}

func (s *SQLiteStore) GetStyleNotesByUserID(userID int64) ([]StyleNote, error) {
	rows, err := s.db.Query("SELECT id, user_id, note, created_at FROM style_notes WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query style notes: %w", err)
	}
	defer rows.Close()

	var notes []StyleNote
	for rows.Next() {
		var n StyleNote
		if err := rows.Scan(&n.ID, &n.UserID, &n.Note, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan style note row: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, nil
}

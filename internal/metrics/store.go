// Package metrics is the privacy-conscious visitor tracking layer.
// Raw IPs never touch disk; only a salted, truncated hash is stored.
package metrics

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"
)

// Visitor is one tracked page view.
type Visitor struct {
	ID        int       `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// PostStat is the per-article view counter shown on the dashboard.
type PostStat struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	FirstSeen time.Time `json:"first_seen"`
	Views     int       `json:"views"`
}

// Stats is the aggregate snapshot the admin dashboard renders.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	TotalPostViews   int64      `json:"total_post_views"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TopPosts         []PostStat `json:"top_posts"`
	RecentVisitors   []Visitor  `json:"recent_visitors"`
}

// Store owns the sqlite handle plus the per-process admin token and
// hashing salt. Both are random per boot: sessions and IP hashes do not
// survive a restart, on purpose.
type Store struct {
	db         *sql.DB
	adminToken string
	salt       string
}

// Open creates (or reuses) the metrics database at path and generates
// the per-process secrets.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("metrics: open %s: %w", path, err)
	}

	s := &Store{
		db:         db,
		adminToken: randomToken(),
		salt:       randomToken(),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	// Retention cleanup runs in the background on every boot.
	go s.CleanupOldVisitors()

	log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS visitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			hashed_ip TEXT NOT NULL,
			user_agent TEXT,
			path TEXT,
			timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS post_views (
			slug TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			first_seen DATETIME DEFAULT CURRENT_TIMESTAMP,
			views INTEGER NOT NULL DEFAULT 0
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("metrics: migrate: %w", err)
		}
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func randomToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate random token:", err)
	}
	return hex.EncodeToString(bytes)
}

// AdminToken is the session cookie value for this process.
func (s *Store) AdminToken() string {
	return s.adminToken
}

// ValidAdminToken compares in constant time.
func (s *Store) ValidAdminToken(token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) == 1
}

// HashIP reduces an IP to a salted 16-hex-char hash, consistent per IP
// within one process lifetime.
func (s *Store) HashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// TrackVisitor records one page view with a hashed IP.
func (s *Store) TrackVisitor(ip, userAgent, path string) {
	_, err := s.db.Exec(`
		INSERT INTO visitors (hashed_ip, user_agent, path, timestamp)
		VALUES (?, ?, ?, ?)
	`, s.HashIP(ip), userAgent, path, time.Now())
	if err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

// RecordPostView bumps the counter for one article slug.
func (s *Store) RecordPostView(slug, title string) {
	_, err := s.db.Exec(`
		INSERT INTO post_views (slug, title, views) VALUES (?, ?, 1)
		ON CONFLICT(slug) DO UPDATE SET views = views + 1
	`, slug, title)
	if err != nil {
		log.Printf("Error recording post view for %s: %v", slug, err)
	}
}

// CleanupOldVisitors drops visitor rows older than 12 months.
func (s *Store) CleanupOldVisitors() {
	result, err := s.db.Exec(`
		DELETE FROM visitors
		WHERE timestamp < datetime('now', '-12 months')
	`)
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return
	}
	if deleted, _ := result.RowsAffected(); deleted > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than 12 months", deleted)
	}
}

// GetStats assembles the dashboard snapshot.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM visitors").Scan(&stats.TotalVisitors); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow("SELECT COUNT(DISTINCT hashed_ip) FROM visitors").Scan(&stats.UniqueVisitors); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow("SELECT COALESCE(SUM(views), 0) FROM post_views").Scan(&stats.TotalPostViews); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE DATE(timestamp) = DATE('now')
	`).Scan(&stats.VisitorsToday); err != nil {
		return nil, err
	}
	if err := s.db.QueryRow(`
		SELECT COUNT(*) FROM visitors
		WHERE timestamp >= datetime('now', '-7 days')
	`).Scan(&stats.VisitorsThisWeek); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT slug, title, first_seen, views
		FROM post_views
		ORDER BY views DESC, first_seen DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var p PostStat
		if err := rows.Scan(&p.Slug, &p.Title, &p.FirstSeen, &p.Views); err != nil {
			continue
		}
		stats.TopPosts = append(stats.TopPosts, p)
	}

	rows, err = s.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT 50
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var v Visitor
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		stats.RecentVisitors = append(stats.RecentVisitors, v)
	}

	return stats, nil
}

// RecentVisitors lists the latest tracked views, newest first.
func (s *Store) RecentVisitors(limit int) ([]Visitor, error) {
	rows, err := s.db.Query(`
		SELECT id, hashed_ip, user_agent, path, timestamp
		FROM visitors
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var visitors []Visitor
	for rows.Next() {
		var v Visitor
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &v.Timestamp); err != nil {
			continue
		}
		visitors = append(visitors, v)
	}
	return visitors, rows.Err()
}

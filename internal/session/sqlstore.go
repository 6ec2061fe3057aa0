package session

import (
	"database/sql"
	"fmt"
)

// SQLStore persists session keys in a MySQL key-value table.
type SQLStore struct {
	DB    *sql.DB
	Table string
}

func NewSQLStore(db *sql.DB) (*SQLStore, error) {
	s := &SQLStore{DB: db, Table: "session_kv"}
	if err := s.ensureTable(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) table() string {
	if s.Table != "" {
		return s.Table
	}
	return "session_kv"
}

func (s *SQLStore) ensureTable() error {
	if s.DB == nil {
		return fmt.Errorf("db not available")
	}
	ddl := `
CREATE TABLE IF NOT EXISTS ` + s.table() + ` (
	k VARCHAR(191) PRIMARY KEY,
	v MEDIUMTEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := s.DB.Exec(ddl)
	return err
}

func (s *SQLStore) Get(key string) (string, bool, error) {
	var v string
	err := s.DB.QueryRow(`SELECT v FROM `+s.table()+` WHERE k = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.DB.Exec(`INSERT INTO `+s.table()+` (k, v) VALUES (?, ?)
			 ON DUPLICATE KEY UPDATE v=VALUES(v)`, key, value)
	return err
}

func (s *SQLStore) Remove(key string) error {
	_, err := s.DB.Exec(`DELETE FROM `+s.table()+` WHERE k = ?`, key)
	return err
}

package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"

	"postfeed/models"
)

var DB *sql.DB // Exported DB variable

// InitDB opens the SQLite file backing the local posts collection and
// creates its table.
func InitDB(path string) error {
	var err error
	DB, err = sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	// one writer at a time keeps sqlite from returning "database is locked"
	DB.SetMaxOpenConns(1)

	return createTables()
}

func createTables() error {
	_, err := DB.Exec(`
        CREATE TABLE IF NOT EXISTS posts (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id INTEGER NOT NULL,
            title TEXT NOT NULL,
            body TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );
    `)
	if err != nil {
		log.Printf("Error creating 'posts' table: %v", err)
		return err
	}
	log.Println("'posts' table created or already exists")
	return nil
}

// SeedPosts inserts n sample posts when the table is empty.
func SeedPosts(n int) error {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("counting posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	for i := 1; i <= n; i++ {
		_, err := tx.Exec(
			"INSERT INTO posts (user_id, title, body) VALUES (?, ?, ?)",
			(i-1)/10+1,
			fmt.Sprintf("Sample post %d", i),
			fmt.Sprintf("This is the body of sample post %d.", i),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("seeding post %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	log.Printf("Seeded %d sample posts", n)
	return nil
}

func ListPosts() ([]models.Post, error) {
	rows, err := DB.Query("SELECT id, user_id, title, body FROM posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("error querying posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Body); err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// GetPost returns sql.ErrNoRows when the id is unknown.
func GetPost(id int) (models.Post, error) {
	var p models.Post
	err := DB.QueryRow(
		"SELECT id, user_id, title, body FROM posts WHERE id = ?", id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Body)
	return p, err
}

// InsertPost stores p and returns it with the assigned id.
func InsertPost(p models.Post) (models.Post, error) {
	result, err := DB.Exec(
		"INSERT INTO posts (user_id, title, body) VALUES (?, ?, ?)",
		p.UserID, p.Title, p.Body,
	)
	if err != nil {
		return models.Post{}, fmt.Errorf("error inserting post: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Post{}, fmt.Errorf("error retrieving post ID: %w", err)
	}
	p.ID = int(id)
	return p, nil
}

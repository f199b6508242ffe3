package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/finsight-ai/finsight/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db}

	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) SaveChat(ctx context.Context, chat *models.ChatRecord) error {
	query := `
		INSERT INTO chats (id, user_id, message, intent, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		chat.ID,
		chat.UserID,
		chat.Message,
		string(chat.Intent),
		chat.Response,
		chat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving chat: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetUserChats(ctx context.Context, userID string, limit int) ([]*models.ChatRecord, error) {
	query := `
		SELECT id, user_id, message, intent, response, created_at
		FROM chats
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying chats: %w", err)
	}
	defer rows.Close()

	var chats []*models.ChatRecord
	for rows.Next() {
		chat := &models.ChatRecord{}
		var intent string
		err := rows.Scan(
			&chat.ID,
			&chat.UserID,
			&chat.Message,
			&intent,
			&chat.Response,
			&chat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning chat: %w", err)
		}
		chat.Intent = models.Intent(intent)
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chats: %w", err)
	}

	return chats, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

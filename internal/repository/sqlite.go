package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/skinwise/skinwise/internal/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// For in-memory SQLite, multiple connections create separate databases.
	// Keep a single connection to avoid schema/data disappearing across goroutines.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id TEXT PRIMARY KEY,
			email TEXT UNIQUE,
			name TEXT,
			age INTEGER,
			skin_type TEXT NOT NULL,
			concerns TEXT,
			allergies TEXT,
			climate TEXT,
			lifestyle TEXT,
			medical_conditions TEXT,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id TEXT PRIMARY KEY,
			barcode TEXT UNIQUE,
			name TEXT NOT NULL,
			brand TEXT,
			category TEXT,
			ingredients TEXT,
			description TEXT,
			price REAL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_barcode ON products(barcode)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			outcome TEXT,
			rating INTEGER,
			notes TEXT,
			timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_user ON feedback(user_id)`,
		`CREATE TABLE IF NOT EXISTS conversations (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL,
			message TEXT NOT NULL,
			agent_used TEXT,
			timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_user ON conversations(user_id, timestamp)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new user profile.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *domain.UserProfile) error {
	concerns, err := marshalStrings(user.Concerns)
	if err != nil {
		return fmt.Errorf("failed to marshal concerns: %w", err)
	}
	allergies, err := marshalStrings(user.Allergies)
	if err != nil {
		return fmt.Errorf("failed to marshal allergies: %w", err)
	}
	conditions, err := marshalStrings(user.MedicalConditions)
	if err != nil {
		return fmt.Errorf("failed to marshal medical conditions: %w", err)
	}

	lifestyle := "{}"
	if len(user.Lifestyle) > 0 {
		lifestyle = string(user.Lifestyle)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (user_id, name, age, skin_type, concerns, allergies, climate, lifestyle, medical_conditions, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.UserID, user.Name, user.Age, string(user.SkinType),
		concerns, allergies, user.Climate, lifestyle, conditions, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUser retrieves a user profile by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT user_id, name, COALESCE(age, 0), skin_type, concerns, allergies, COALESCE(climate, ''), COALESCE(lifestyle, '{}'), medical_conditions, created_at, updated_at
		 FROM users WHERE user_id = ?`, userID)

	var user domain.UserProfile
	var skinType, concerns, allergies, lifestyle, conditions string
	var updatedAt sql.NullTime

	err := row.Scan(&user.UserID, &user.Name, &user.Age, &skinType, &concerns,
		&allergies, &user.Climate, &lifestyle, &conditions, &user.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.SkinType = domain.SkinType(skinType)
	user.Lifestyle = json.RawMessage(lifestyle)
	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	if user.Concerns, err = unmarshalStrings(concerns); err != nil {
		return nil, fmt.Errorf("failed to unmarshal concerns: %w", err)
	}
	if user.Allergies, err = unmarshalStrings(allergies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal allergies: %w", err)
	}
	if user.MedicalConditions, err = unmarshalStrings(conditions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal medical conditions: %w", err)
	}

	return &user, nil
}

// CreateProduct inserts a new product.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *domain.Product) error {
	ingredients, err := marshalStrings(product.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO products (product_id, barcode, name, brand, category, ingredients, description, price, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ProductID, product.Barcode, product.Name, product.Brand,
		product.Category, ingredients, product.Description, product.Price, product.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetProductByBarcode retrieves a product by barcode.
func (s *SQLiteStore) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT product_id, barcode, name, COALESCE(brand, ''), COALESCE(category, ''), ingredients, COALESCE(description, ''), COALESCE(price, 0), created_at
		 FROM products WHERE barcode = ?`, barcode)

	var product domain.Product
	var ingredients string

	err := row.Scan(&product.ProductID, &product.Barcode, &product.Name,
		&product.Brand, &product.Category, &ingredients, &product.Description,
		&product.Price, &product.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product.Ingredients, err = unmarshalStrings(ingredients); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}

	return &product, nil
}

// CreateFeedback inserts a feedback record.
func (s *SQLiteStore) CreateFeedback(ctx context.Context, feedback *domain.Feedback) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, user_id, product_id, outcome, rating, notes, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		feedback.ID, feedback.UserID, feedback.ProductID, feedback.Outcome,
		feedback.Rating, feedback.Notes, feedback.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", err)
	}

	return nil
}

// AppendTurn inserts a conversation turn.
func (s *SQLiteStore) AppendTurn(ctx context.Context, turn *domain.ConversationTurn) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, user_id, role, message, agent_used, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		turn.ID, turn.UserID, string(turn.Role), turn.Message,
		string(turn.AgentUsed), turn.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

// RecentTurns returns up to limit turns for the user, oldest first.
// The query walks most-recent-first and the result is reversed so agents
// read the window chronologically.
func (s *SQLiteStore) RecentTurns(ctx context.Context, userID string, limit int) ([]domain.ConversationTurn, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, role, message, COALESCE(agent_used, ''), timestamp
		 FROM conversations WHERE user_id = ?
		 ORDER BY timestamp DESC, rowid DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query turns: %w", err)
	}
	defer rows.Close()

	var turns []domain.ConversationTurn
	for rows.Next() {
		var turn domain.ConversationTurn
		var role, agentUsed string
		if err := rows.Scan(&turn.ID, &turn.UserID, &role, &turn.Message, &agentUsed, &turn.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.Role = domain.Role(role)
		turn.AgentUsed = domain.AgentKind(agentUsed)
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate turns: %w", err)
	}

	// Reverse to chronological order.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalStrings(data string) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return nil, err
	}
	return values, nil
}

var _ Store = (*SQLiteStore)(nil)

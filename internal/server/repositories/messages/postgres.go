package messages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devopschat/internal/dbx"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository binds the repository to db. When db can begin
// transactions (*sql.DB, *sql.Conn) AppendTurn opens its own; when db is
// already a *sql.Tx both rows join it.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, msg *models.ChatMessage) error {
	return insertMessage(ctx, r.db, msg)
}

func (r *PostgresRepository) AppendTurn(ctx context.Context, question, answer *models.ChatMessage) error {
	insertBoth := func(ctx context.Context, tx dbx.DBTX) error {
		if err := insertMessage(ctx, tx, question); err != nil {
			return err
		}
		return insertMessage(ctx, tx, answer)
	}

	b, ok := r.db.(dbx.TxBeginner)
	if !ok {
		return insertBoth(ctx, r.db)
	}
	return dbx.WithTx(ctx, b, nil, insertBoth)
}

func insertMessage(ctx context.Context, db dbx.DBTX, msg *models.ChatMessage) error {
	query :=
		`INSERT INTO chat_history (user_id, message, sender)
		 VALUES ($1, $2, $3)
		 RETURNING id, timestamp
		 `

	err := db.QueryRowContext(ctx, query, msg.UserID, msg.Message, string(msg.Sender)).
		Scan(&msg.ID, &msg.Timestamp)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	msg.Timestamp = msg.Timestamp.UTC()
	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.ChatMessage, error) {
	query :=
		`SELECT id, user_id, message, sender, timestamp FROM chat_history
		 WHERE user_id = $1
		 ORDER BY timestamp ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.ChatMessage, 0)
	for rows.Next() {
		m := &models.ChatMessage{}
		var sender string
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &sender, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.Sender = models.Sender(sender)
		m.Timestamp = m.Timestamp.UTC()
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

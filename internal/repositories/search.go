package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/gradewatch/gradewatch/internal/logger"
	"github.com/gradewatch/gradewatch/internal/models"
)

// SearchReadRepository handles saved-search read operations
type SearchReadRepository struct {
	db *sqlx.DB
}

func NewSearchReadRepository(db *sqlx.DB) *SearchReadRepository {
	return &SearchReadRepository{db: db}
}

// Get returns the saved search for (user, card name), or nil when absent.
// Card names are matched exactly, case-sensitive.
func (r *SearchReadRepository) Get(ctx context.Context, userID uuid.UUID, cardName string) (*models.SearchDB, error) {
	const query = `
		SELECT search_id, user_id, card_name, region, last_result, last_image, updated_at, confirmed
		FROM searches
		WHERE user_id = $1 AND card_name = $2
		LIMIT 1
	`

	var record models.SearchDB
	err := r.db.GetContext(ctx, &record, query, userID, cardName)

	logger.Log.Infow("search read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, cardName},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// ListByUserID returns all saved searches for a user.
func (r *SearchReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.SearchDB, error) {
	const query = `
		SELECT search_id, user_id, card_name, region, last_result, last_image, updated_at, confirmed
		FROM searches
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	var records []models.SearchDB
	err := r.db.SelectContext(ctx, &records, query, userID)

	logger.Log.Infow("search list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return records, nil
}

// SearchWriteRepository handles saved-search write operations
type SearchWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSearchWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SearchWriteRepository {
	return &SearchWriteRepository{db: db, txGetter: txGetter}
}

func (r *SearchWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Upsert saves a search result. A fresh or refreshed result always clears
// the confirmed flag; the unique constraint on (user_id, card_name)
// guarantees one row per card per user.
func (r *SearchWriteRepository) Upsert(ctx context.Context, userID uuid.UUID, cardName, region, lastResult, lastImage string) error {
	query := `
		INSERT INTO searches (search_id, user_id, card_name, region, last_result, last_image, updated_at, confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), FALSE)
		ON CONFLICT (user_id, card_name)
		DO UPDATE SET last_result = EXCLUDED.last_result,
		              last_image = EXCLUDED.last_image,
		              updated_at = NOW(),
		              confirmed = FALSE
		RETURNING search_id
	`
	args := []any{uuid.New(), userID, cardName, region, lastResult, lastImage}

	var searchID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &searchID, query, args...)

	logger.Log.Infow("search upsert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, cardName, region},
		"result", searchID,
		"error", err,
	)

	return err
}

// ConfirmImage marks the record's image as user-accepted. Returns
// sql.ErrNoRows when no record exists for (user, card name).
func (r *SearchWriteRepository) ConfirmImage(ctx context.Context, userID uuid.UUID, cardName, imageURL string) error {
	query := `
		UPDATE searches
		SET last_image = $3, confirmed = TRUE, updated_at = NOW()
		WHERE user_id = $1 AND card_name = $2
		RETURNING search_id
	`
	args := []any{userID, cardName, imageURL}

	var searchID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &searchID, query, args...)

	logger.Log.Infow("search confirm image",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", searchID,
		"error", err,
	)

	return err
}

package topics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"topicboard/internal/common"
	"topicboard/internal/dbx"
	"topicboard/internal/server/models"
)

const topicColumns = "id, topic, picture_url, post_date, is_visible, is_adopted, contributor_id"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, topic *models.Topic) (*models.Topic, error) {

	query :=
		`INSERT INTO topics (topic, picture_url, post_date, is_visible, is_adopted, contributor_id)
         VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		topic.Body, topic.PictureURL, topic.PostDate, topic.IsVisible,
		topic.IsAdopted, topic.ContributorID).Scan(&topic.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return topic, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 WHERE id = $1
		 `

	topic := &models.Topic{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&topic.ID, &topic.Body, &topic.PictureURL, &topic.PostDate,
		&topic.IsVisible, &topic.IsAdopted, &topic.ContributorID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return topic, nil
}

func (r *PostgresRepository) ListVisible(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 WHERE is_visible = TRUE
		 ORDER BY id
		 OFFSET $1 LIMIT $2
		 `

	return r.queryTopics(ctx, query, offset, limit)
}

func (r *PostgresRepository) ListAll(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 ORDER BY id
		 OFFSET $1 LIMIT $2
		 `

	return r.queryTopics(ctx, query, offset, limit)
}

func (r *PostgresRepository) ListAdopted(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 WHERE is_visible = TRUE AND is_adopted = TRUE
		 ORDER BY id
		 OFFSET $1 LIMIT $2
		 `

	return r.queryTopics(ctx, query, offset, limit)
}

func (r *PostgresRepository) ListByContributor(ctx context.Context, contributorID int64, offset, limit int64) ([]*models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 WHERE is_visible = TRUE AND contributor_id = $1
		 ORDER BY id
		 OFFSET $2 LIMIT $3
		 `

	return r.queryTopics(ctx, query, contributorID, offset, limit)
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied keywords.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *PostgresRepository) SearchByKeyword(ctx context.Context, keyword string, offset, limit int64) ([]*models.Topic, error) {
	query :=
		`SELECT ` + topicColumns + ` FROM topics
		 WHERE is_visible = TRUE AND topic ILIKE $1
		 ORDER BY id
		 OFFSET $2 LIMIT $3
		 `

	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	return r.queryTopics(ctx, query, pattern, offset, limit)
}

func (r *PostgresRepository) Update(ctx context.Context, topic *models.Topic) error {
	query :=
		`UPDATE topics
		 SET topic = $1, picture_url = $2, is_adopted = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query,
		topic.Body, topic.PictureURL, topic.IsAdopted, topic.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// Hide performs the soft delete: the row stays, only visibility flips.
func (r *PostgresRepository) Hide(ctx context.Context, id int64) error {
	query :=
		`UPDATE topics
		 SET is_visible = FALSE
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) queryTopics(ctx context.Context, query string, args ...any) ([]*models.Topic, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Topic
	for rows.Next() {
		topic := &models.Topic{}
		if err := rows.Scan(
			&topic.ID, &topic.Body, &topic.PictureURL, &topic.PostDate,
			&topic.IsVisible, &topic.IsAdopted, &topic.ContributorID); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

package topics

import (
	"context"

	"topicboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, topic *models.Topic) (*models.Topic, error)
	GetByID(ctx context.Context, id int64) (*models.Topic, error)
	ListVisible(ctx context.Context, offset, limit int64) ([]*models.Topic, error)
	ListAll(ctx context.Context, offset, limit int64) ([]*models.Topic, error)
	ListAdopted(ctx context.Context, offset, limit int64) ([]*models.Topic, error)
	ListByContributor(ctx context.Context, contributorID int64, offset, limit int64) ([]*models.Topic, error)
	SearchByKeyword(ctx context.Context, keyword string, offset, limit int64) ([]*models.Topic, error)
	Update(ctx context.Context, topic *models.Topic) error
	Hide(ctx context.Context, id int64) error
}

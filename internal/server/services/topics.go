// TopicService implements the topic lifecycle: creation, listing, editing,
// and soft deletion, with the ownership checks from the authz package.
package services

import (
	"context"
	"database/sql"
	"time"

	"topicboard/internal/dbx"
	"topicboard/internal/server/authz"
	"topicboard/internal/server/models"
	"topicboard/internal/server/repositories/repomanager"
)

type TopicService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTopicService(db *sql.DB, m repomanager.RepositoryManager) *TopicService {
	return &TopicService{db: db, repomanager: m}
}

// CreateTopicInput is the client-controlled part of a new topic. The
// contributor is always the authenticated account, never the payload.
type CreateTopicInput struct {
	Body       string
	PictureURL string
	IsAdopted  bool
}

// Create posts a new visible topic owned by account, dated today.
func (s *TopicService) Create(ctx context.Context, account *models.User, in CreateTopicInput) (*models.Topic, error) {
	if err := authz.CanCreateTopic(account); err != nil {
		return nil, err
	}

	topic := &models.Topic{
		Body:          in.Body,
		PictureURL:    in.PictureURL,
		PostDate:      time.Now(),
		IsVisible:     true,
		IsAdopted:     in.IsAdopted,
		ContributorID: account.ID,
	}

	repo := s.repomanager.Topics(s.db)
	return repo.Create(ctx, topic)
}

// GetByID loads a single topic regardless of visibility.
func (s *TopicService) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)
	return repo.GetByID(ctx, id)
}

// ListVisible returns the public topic feed.
func (s *TopicService) ListVisible(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)
	return repo.ListVisible(ctx, offset, limit)
}

// ListAll returns every topic including hidden ones. Callers gate this
// behind the superuser check.
func (s *TopicService) ListAll(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)
	return repo.ListAll(ctx, offset, limit)
}

// ListAdopted returns visible topics marked as adopted.
func (s *TopicService) ListAdopted(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)
	return repo.ListAdopted(ctx, offset, limit)
}

// ListByContributor returns the visible topics posted by one account.
func (s *TopicService) ListByContributor(ctx context.Context, contributorID int64, offset, limit int64) ([]*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)
	return repo.ListByContributor(ctx, contributorID, offset, limit)
}

// SearchByKeyword returns visible topics whose body matches the keyword.
func (s *TopicService) SearchByKeyword(ctx context.Context, keyword string, offset, limit int64) ([]*models.Topic, error) {
	repo := s.repomanager.Topics(s.db)
	return repo.SearchByKeyword(ctx, keyword, offset, limit)
}

// EditTopicInput carries partial topic updates; nil fields keep the stored
// value. The contributor and post date are not editable.
type EditTopicInput struct {
	Body       *string
	PictureURL *string
	IsAdopted  *bool
}

// Edit updates a topic after checking ownership. The topic is loaded first,
// so a missing id reports not-found before any permission error. Only the
// contributor may edit.
func (s *TopicService) Edit(ctx context.Context, account *models.User, id int64, in EditTopicInput) (*models.Topic, error) {
	var topic *models.Topic

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Topics(tx)

		var err error
		topic, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := authz.CanEditTopic(account, topic); err != nil {
			return err
		}

		if in.Body != nil {
			topic.Body = *in.Body
		}
		if in.PictureURL != nil {
			topic.PictureURL = *in.PictureURL
		}
		if in.IsAdopted != nil {
			topic.IsAdopted = *in.IsAdopted
		}

		return repo.Update(ctx, topic)
	})
	if err != nil {
		return nil, err
	}

	return topic, nil
}

// Delete soft-deletes a topic after checking ownership: the row stays with
// is_visible flipped off. The contributor or a superuser may delete, and a
// missing id reports not-found before any permission error.
func (s *TopicService) Delete(ctx context.Context, account *models.User, id int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Topics(tx)

		topic, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if err := authz.CanDeleteTopic(account, topic); err != nil {
			return err
		}

		return repo.Hide(ctx, topic.ID)
	})
}

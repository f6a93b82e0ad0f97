package services

import (
	"context"
	"errors"
	"testing"

	"topicboard/internal/common"
	"topicboard/internal/server/models"
)

type fakeTopicsRepo struct {
	createOut *models.Topic
	createErr error

	getOut *models.Topic
	getErr error

	listOut []*models.Topic
	listErr error

	updateErr error
	hideErr   error

	updated *models.Topic
	hiddenID int64
}

func (f *fakeTopicsRepo) Create(ctx context.Context, topic *models.Topic) (*models.Topic, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return topic, nil
}

func (f *fakeTopicsRepo) GetByID(ctx context.Context, id int64) (*models.Topic, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTopicsRepo) ListVisible(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	return f.listOut, f.listErr
}

func (f *fakeTopicsRepo) ListAll(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	return f.listOut, f.listErr
}

func (f *fakeTopicsRepo) ListAdopted(ctx context.Context, offset, limit int64) ([]*models.Topic, error) {
	return f.listOut, f.listErr
}

func (f *fakeTopicsRepo) ListByContributor(ctx context.Context, contributorID int64, offset, limit int64) ([]*models.Topic, error) {
	return f.listOut, f.listErr
}

func (f *fakeTopicsRepo) SearchByKeyword(ctx context.Context, keyword string, offset, limit int64) ([]*models.Topic, error) {
	return f.listOut, f.listErr
}

func (f *fakeTopicsRepo) Update(ctx context.Context, topic *models.Topic) error {
	f.updated = topic
	return f.updateErr
}

func (f *fakeTopicsRepo) Hide(ctx context.Context, id int64) error {
	f.hiddenID = id
	return f.hideErr
}

func TestTopicCreate_ForcesContributorAndDefaults(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeTopicsRepo{}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	account := &models.User{ID: 7, Email: "alice@example.com"}
	topic, err := s.Create(context.Background(), account, CreateTopicInput{Body: "rainwater harvesting"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if topic.ContributorID != 7 {
		t.Fatalf("contributor must be the authenticated account, got %d", topic.ContributorID)
	}
	if !topic.IsVisible {
		t.Fatalf("new topics must be visible")
	}
	if topic.PostDate.IsZero() {
		t.Fatalf("post date must be set")
	}
}

func TestTopicCreate_Anonymous(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewTopicService(db, &fakeRepoManager{t: &fakeTopicsRepo{}})

	if _, err := s.Create(context.Background(), nil, CreateTopicInput{Body: "x"}); !errors.Is(err, common.ErrorLoginRequired) {
		t.Fatalf("want ErrorLoginRequired, got %v", err)
	}
}

func TestTopicEdit_OwnerSucceeds(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	repo := &fakeTopicsRepo{getOut: &models.Topic{ID: 11, Body: "old", ContributorID: 7}}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	body := "new body"
	topic, err := s.Edit(context.Background(), &models.User{ID: 7}, 11, EditTopicInput{Body: &body})
	if err != nil {
		t.Fatalf("Edit error: %v", err)
	}
	if topic.Body != "new body" {
		t.Fatalf("body not updated: %+v", topic)
	}
	if repo.updated == nil || repo.updated.ID != 11 {
		t.Fatalf("Update not called with the loaded topic")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestTopicEdit_NonOwnerForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{getOut: &models.Topic{ID: 11, ContributorID: 7}}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	body := "x"
	_, err := s.Edit(context.Background(), &models.User{ID: 8}, 11, EditTopicInput{Body: &body})
	if !errors.Is(err, common.ErrorNotContributor) {
		t.Fatalf("want ErrorNotContributor, got %v", err)
	}
	if repo.updated != nil {
		t.Fatalf("Update must not run for non-owners")
	}
}

func TestTopicEdit_SuperuserGetsNoBypass(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{getOut: &models.Topic{ID: 11, ContributorID: 7}}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	body := "x"
	_, err := s.Edit(context.Background(), &models.User{ID: 8, IsSuperuser: true}, 11, EditTopicInput{Body: &body})
	if !errors.Is(err, common.ErrorNotContributor) {
		t.Fatalf("superuser must not edit others' topics, got %v", err)
	}
}

func TestTopicEdit_MissingIDBeforePermission(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{getErr: common.ErrorNotFound}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	body := "x"
	_, err := s.Edit(context.Background(), &models.User{ID: 8}, 404, EditTopicInput{Body: &body})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("missing topic must report not-found, got %v", err)
	}
}

func TestTopicDelete_OwnerAndSuperuser(t *testing.T) {
	for _, account := range []*models.User{
		{ID: 7},
		{ID: 8, IsSuperuser: true},
	} {
		db, mock := newSQLMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeTopicsRepo{getOut: &models.Topic{ID: 11, ContributorID: 7}}
		s := NewTopicService(db, &fakeRepoManager{t: repo})

		if err := s.Delete(context.Background(), account, 11); err != nil {
			t.Fatalf("Delete by %+v: %v", account, err)
		}
		if repo.hiddenID != 11 {
			t.Fatalf("Hide not called for topic 11")
		}
		db.Close()
	}
}

func TestTopicDelete_NonOwnerForbidden(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{getOut: &models.Topic{ID: 11, ContributorID: 7}}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	err := s.Delete(context.Background(), &models.User{ID: 8}, 11)
	if !errors.Is(err, common.ErrorNoPermission) {
		t.Fatalf("want ErrorNoPermission, got %v", err)
	}
	if repo.hiddenID != 0 {
		t.Fatalf("Hide must not run for non-owners")
	}
}

func TestTopicDelete_MissingID(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	repo := &fakeTopicsRepo{getErr: common.ErrorNotFound}
	s := NewTopicService(db, &fakeRepoManager{t: repo})

	if err := s.Delete(context.Background(), &models.User{ID: 8}, 404); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}

func TestTopicListings_PassThrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	want := []*models.Topic{{ID: 1}, {ID: 2}}
	s := NewTopicService(db, &fakeRepoManager{t: &fakeTopicsRepo{listOut: want}})

	ctx := context.Background()
	for name, call := range map[string]func() ([]*models.Topic, error){
		"visible":     func() ([]*models.Topic, error) { return s.ListVisible(ctx, 0, 100) },
		"all":         func() ([]*models.Topic, error) { return s.ListAll(ctx, 0, 100) },
		"adopted":     func() ([]*models.Topic, error) { return s.ListAdopted(ctx, 0, 100) },
		"contributor": func() ([]*models.Topic, error) { return s.ListByContributor(ctx, 1, 0, 100) },
		"search":      func() ([]*models.Topic, error) { return s.SearchByKeyword(ctx, "x", 0, 100) },
	} {
		got, err := call()
		if err != nil || len(got) != 2 {
			t.Fatalf("%s: got (%v, %v)", name, got, err)
		}
	}
}

package repomanager

import (
	"context"
	"database/sql"

	"topicboard/internal/dbx"
	"topicboard/internal/server/repositories/topics"
	"topicboard/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Topics(db dbx.DBTX) topics.Repository
}

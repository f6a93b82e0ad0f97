// Package authz holds the pure ownership and privilege checks for topics.
// The predicates take already-loaded records and never touch storage, so the
// services decide what to fetch and in which order.
package authz

import (
	"topicboard/internal/common"
	"topicboard/internal/server/models"
)

// CanCreateTopic checks that a signed-in account is present.
func CanCreateTopic(account *models.User) error {
	if account == nil {
		return common.ErrorLoginRequired
	}
	return nil
}

// CanEditTopic allows only the contributor to edit. Superusers get no
// bypass here: editing is personal, removal is moderation.
func CanEditTopic(account *models.User, topic *models.Topic) error {
	if account == nil {
		return common.ErrorLoginRequired
	}
	if account.ID != topic.ContributorID {
		return common.ErrorNotContributor
	}
	return nil
}

// CanDeleteTopic allows the contributor or any superuser to delete.
func CanDeleteTopic(account *models.User, topic *models.Topic) error {
	if account == nil {
		return common.ErrorLoginRequired
	}
	if account.ID != topic.ContributorID && !account.IsSuperuser {
		return common.ErrorNoPermission
	}
	return nil
}

package httpapi

import (
	"topicboard/internal/server/models"
)

const postDateLayout = "2006-01-02"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type topicResponse struct {
	ID            int64  `json:"id"`
	Topic         string `json:"topic"`
	PictureURL    string `json:"picture_url"`
	PostDate      string `json:"post_date"`
	IsVisible     bool   `json:"is_visible"`
	IsAdopted     bool   `json:"is_adopted"`
	ContributorID int64  `json:"contributor_id"`
}

func toTopicResponse(t *models.Topic) topicResponse {
	return topicResponse{
		ID:            t.ID,
		Topic:         t.Body,
		PictureURL:    t.PictureURL,
		PostDate:      t.PostDate.Format(postDateLayout),
		IsVisible:     t.IsVisible,
		IsAdopted:     t.IsAdopted,
		ContributorID: t.ContributorID,
	}
}

func toTopicResponses(topics []*models.Topic) []topicResponse {
	out := make([]topicResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, toTopicResponse(t))
	}
	return out
}

// userResponse never carries the password digest.
type userResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
	}
}

func toUserResponses(users []*models.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

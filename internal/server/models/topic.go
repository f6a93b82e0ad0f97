package models

import "time"

// Topic is a posted topic. ContributorID references the owning User and is
// fixed at creation. Delete is soft: IsVisible flips to false and the row
// stays.
type Topic struct {
	ID            int64     `db:"id"`
	Body          string    `db:"topic"`
	PictureURL    string    `db:"picture_url"`
	PostDate      time.Time `db:"post_date"`
	IsVisible     bool      `db:"is_visible"`
	IsAdopted     bool      `db:"is_adopted"`
	ContributorID int64     `db:"contributor_id"`
}

package models

import "time"

// Contribution lifecycle on the positivity wall.
const (
	ContributionPending   = "pending"
	ContributionPublished = "published"
)

// Contribution types.
const (
	ContributionQuote = "quote"
	ContributionStory = "story"
)

// Contribution is a user-submitted quote or story awaiting moderation.
type Contribution struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Content   string    `bson:"content" json:"content"`
	Type      string    `bson:"type" json:"type"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// UserFeedback is a suggestion, complaint or general note from a user.
type UserFeedback struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Content   string    `bson:"content" json:"content"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

package model

import "time"

const (
	PlatformFacebook  = "Facebook"
	PlatformX         = "X"
	PlatformLinkedIn  = "LinkedIn"
	PlatformInstagram = "Instagram"

	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"

	DefaultTopic = "General"
)

var knownPlatforms = map[string]bool{
	PlatformFacebook:  true,
	PlatformX:         true,
	PlatformLinkedIn:  true,
	PlatformInstagram: true,
}

func KnownPlatform(platform string) bool {
	return knownPlatforms[platform]
}

type NewsArticle struct {
	ID           int64     `db:"id"`
	OwnerID      int64     `db:"owner_id"`
	SourceURL    string    `db:"source_url"`
	OriginalText string    `db:"original_text"`
	Topic        string    `db:"topic"`
	CreatedAt    time.Time `db:"created_at"`
}

type GeneratedPost struct {
	ID        int64     `db:"id"`
	ArticleID int64     `db:"article_id"`
	Platform  string    `db:"platform"`
	Content   string    `db:"content"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

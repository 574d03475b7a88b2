package model

import "time"

// StyleExample is one before/after editing pair used as few-shot
// input when rewriting text in the owner's house style.
type StyleExample struct {
	ID         int64     `db:"id"`
	OwnerID    int64     `db:"owner_id"`
	BeforeText string    `db:"before_text"`
	AfterText  string    `db:"after_text"`
	CreatedAt  time.Time `db:"created_at"`
}

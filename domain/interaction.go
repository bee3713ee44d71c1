package domain

import "time"

const (
	InteractionLike = "like"
	InteractionView = "view"
)

// CREATE TABLE public.interactions (
//     id                BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     user_id           BIGINT NOT NULL REFERENCES users(user_id),
//     game_post_id      BIGINT NOT NULL REFERENCES game_posts(game_post_id),
//     interaction_type  TEXT NOT NULL,
//     created_at        TIMESTAMPTZ DEFAULT NOW()
// );

type Interaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	GamePostID      uint64    `gorm:"column:game_post_id;not null;index" json:"game_post_id"`
	InteractionType string    `gorm:"column:interaction_type;not null" json:"interaction_type"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

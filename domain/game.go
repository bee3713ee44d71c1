package domain

import "database/sql"

const GameStatusPublished = "published"

// CREATE TABLE public.game_posts (
//     game_post_id    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     status          TEXT NOT NULL DEFAULT 'draft',
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );
//
// Every content table below carries game_post_id REFERENCES game_posts and
// nullable text columns.

type Game struct {
	GamePostID uint64 `gorm:"column:game_post_id;primaryKey"`
	Status     string `gorm:"column:status;type:text"`

	Heroes     []GameHero      `gorm:"foreignKey:GamePostID;references:GamePostID"`
	Storylines []GameStoryline `gorm:"foreignKey:GamePostID;references:GamePostID"`
	Gameplays  []GameGameplay  `gorm:"foreignKey:GamePostID;references:GamePostID"`
	Mechanics  []GameMechanic  `gorm:"foreignKey:GamePostID;references:GamePostID"`
	Modes      []GameMode      `gorm:"foreignKey:GamePostID;references:GamePostID"`
	Infos      []GameInfo      `gorm:"foreignKey:GamePostID;references:GamePostID"`
}

func (Game) TableName() string {
	return "game_posts"
}

type GameHero struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	GamePostID    uint64         `gorm:"column:game_post_id;index"`
	GameTitle     sql.NullString `gorm:"column:game_title;type:text"`
	GameDescShort sql.NullString `gorm:"column:game_desc_short;type:text"`
}

func (GameHero) TableName() string {
	return "hero"
}

type GameStoryline struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement"`
	GamePostID uint64         `gorm:"column:game_post_id;index"`
	Paragraphs sql.NullString `gorm:"column:paragraphs;type:text"`
}

func (GameStoryline) TableName() string {
	return "storyline"
}

type GameGameplay struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	GamePostID    uint64         `gorm:"column:game_post_id;index"`
	Paragraph     sql.NullString `gorm:"column:paragraph;type:text"`
	GameplayTitle sql.NullString `gorm:"column:gameplay_title;type:text"`
}

func (GameGameplay) TableName() string {
	return "gameplay"
}

type GameMechanic struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement"`
	GamePostID   uint64         `gorm:"column:game_post_id;index"`
	MechanicText sql.NullString `gorm:"column:mechanic_text;type:text"`
}

func (GameMechanic) TableName() string {
	return "mechanics"
}

type GameMode struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement"`
	GamePostID    uint64         `gorm:"column:game_post_id;index"`
	ModeTitle     sql.NullString `gorm:"column:mode_title;type:text"`
	ModeTitleDesc sql.NullString `gorm:"column:mode_titledesc;type:text"`
}

func (GameMode) TableName() string {
	return "modes"
}

type GameInfo struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement"`
	GamePostID uint64         `gorm:"column:game_post_id;index"`
	Genres     sql.NullString `gorm:"column:genres;type:text"`
	Platforms  sql.NullString `gorm:"column:platforms;type:text"`
}

func (GameInfo) TableName() string {
	return "game_info"
}

package domain

type Trending struct {
	GamePostID    uint64  `gorm:"column:game_post_id;primaryKey" json:"game_post_id"`
	TrendingScore float64 `gorm:"column:trending_score;not null;default:0" json:"trending_score"`
}

func (Trending) TableName() string {
	return "trending"
}

type EditorialPick struct {
	GamePostID uint64 `gorm:"column:game_post_id;primaryKey" json:"game_post_id"`
}

func (EditorialPick) TableName() string {
	return "editorial_picks"
}

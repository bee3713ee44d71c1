package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"gameReco/business/similarity"
	"gameReco/domain"
	"strings"
)

type GameRepository interface {
	FindPublished(ctx context.Context) ([]domain.Game, error)
}

// BuildGameText flattens the content of one game into a single document.
// Field order is fixed: hero, storyline, gameplay, mechanics, modes, info.
// NULL columns become empty strings and are still joined, so the output of
// two games with the same content is byte identical.
func BuildGameText(g domain.Game) string {
	parts := make([]string, 0, 2*len(g.Heroes)+len(g.Storylines)+2*len(g.Gameplays)+
		len(g.Mechanics)+2*len(g.Modes)+2*len(g.Infos))

	for _, h := range g.Heroes {
		parts = append(parts, text(h.GameTitle), text(h.GameDescShort))
	}
	for _, s := range g.Storylines {
		parts = append(parts, text(s.Paragraphs))
	}
	for _, gp := range g.Gameplays {
		parts = append(parts, text(gp.Paragraph), text(gp.GameplayTitle))
	}
	for _, m := range g.Mechanics {
		parts = append(parts, text(m.MechanicText))
	}
	for _, m := range g.Modes {
		parts = append(parts, text(m.ModeTitle), text(m.ModeTitleDesc))
	}
	for _, i := range g.Infos {
		parts = append(parts, text(i.Genres), text(i.Platforms))
	}

	return strings.Join(parts, " ")
}

// Documents turns published games into similarity documents, keeping the
// order in which the store returned them.
func Documents(games []domain.Game) []similarity.Document {
	docs := make([]similarity.Document, 0, len(games))
	for _, g := range games {
		if g.Status != "" && g.Status != domain.GameStatusPublished {
			continue
		}
		docs = append(docs, similarity.Document{
			GameID: g.GamePostID,
			Text:   BuildGameText(g),
		})
	}
	return docs
}

// Load reads every published game from the store and builds its document.
func Load(ctx context.Context, repo GameRepository) ([]similarity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	games, err := repo.FindPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("load published games: %w", err)
	}

	return Documents(games), nil
}

func text(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

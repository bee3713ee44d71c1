package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"gameReco/domain"
	"os"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var errMissingDSN = errors.New("missing TEST_POSTGRES_DSN")

var (
	dbOnce sync.Once
	testDB *gorm.DB
	dbErr  error
)

func openTestDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	dbOnce.Do(func() {
		dsn := os.Getenv("TEST_POSTGRES_DSN")
		if dsn == "" {
			dbErr = errMissingDSN
			return
		}

		testDB, dbErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   gormLogger.Default.LogMode(gormLogger.Silent),
		})
		if dbErr != nil {
			return
		}

		dbErr = testDB.AutoMigrate(
			&domain.User{},
			&domain.Game{},
			&domain.GameHero{},
			&domain.GameStoryline{},
			&domain.GameGameplay{},
			&domain.GameMechanic{},
			&domain.GameMode{},
			&domain.GameInfo{},
			&domain.Interaction{},
			&domain.Trending{},
			&domain.EditorialPick{},
		)
	})

	if errors.Is(dbErr, errMissingDSN) {
		tb.Skip("set TEST_POSTGRES_DSN to run repository integration tests")
	}
	if dbErr != nil {
		tb.Fatalf("failed to init test db: %v", dbErr)
	}
	return testDB
}

// txDB runs every test inside a transaction that is rolled back on cleanup.
func txDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	tx := openTestDB(tb).Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() { tx.Rollback() })
	return tx
}

func seedUser(tb testing.TB, tx *gorm.DB, id uint, role string) {
	tb.Helper()
	u := &domain.User{UserID: id, Role: role, Email: fmt.Sprintf("user%d@example.com", id)}
	if err := tx.WithContext(context.Background()).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
}

func seedGame(tb testing.TB, tx *gorm.DB, id uint64, status, title string) {
	tb.Helper()
	g := &domain.Game{
		GamePostID: id,
		Status:     status,
		Heroes: []domain.GameHero{{
			GameTitle:     sql.NullString{String: title, Valid: true},
			GameDescShort: sql.NullString{},
		}},
		Infos: []domain.GameInfo{{
			Genres:    sql.NullString{String: "rpg", Valid: true},
			Platforms: sql.NullString{String: "pc", Valid: true},
		}},
	}
	if err := tx.WithContext(context.Background()).Create(g).Error; err != nil {
		tb.Fatalf("seed game: %v", err)
	}
}

func seedInteraction(tb testing.TB, tx *gorm.DB, userID uint, gameID uint64, kind string) {
	tb.Helper()
	it := &domain.Interaction{UserID: userID, GamePostID: gameID, InteractionType: kind}
	if err := tx.WithContext(context.Background()).Create(it).Error; err != nil {
		tb.Fatalf("seed interaction: %v", err)
	}
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"gameReco/business/similarity"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const DefaultSnapshotTTL = time.Hour

type SnapshotRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotRepository(client *redis.Client, ttl time.Duration) *SnapshotRepository {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &SnapshotRepository{
		client: client,
		ttl:    ttl,
	}
}

// key format: "similarity:snapshot:{fingerprint hex}"
func snapshotKey(fingerprint uint64) string {
	return fmt.Sprintf("similarity:snapshot:%016x", fingerprint)
}

func (r *SnapshotRepository) PutSnapshot(ctx context.Context, snap *similarity.Snapshot) error {
	jsonData, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal similarity snapshot: %w", err)
	}

	err = r.client.Set(ctx, snapshotKey(snap.Fingerprint), jsonData, r.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store similarity snapshot in Redis: %w", err)
	}

	return nil
}

// GetSnapshot returns similarity.ErrSnapshotMiss when nothing is stored for
// the fingerprint.
func (r *SnapshotRepository) GetSnapshot(ctx context.Context, fingerprint uint64) (*similarity.Snapshot, error) {
	val, err := r.client.Get(ctx, snapshotKey(fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, similarity.ErrSnapshotMiss
		}
		return nil, fmt.Errorf("failed to get similarity snapshot from Redis: %w", err)
	}

	var snap similarity.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal similarity snapshot: %w", err)
	}

	return &snap, nil
}

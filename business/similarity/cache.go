package similarity

import (
	"context"
	"encoding/binary"
	"errors"
	"gameReco/pkg/logger"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

type CacheMode string

const (
	CacheOff    CacheMode = "off"
	CacheMemory CacheMode = "memory"
	CacheRedis  CacheMode = "redis"
)

// ErrSnapshotMiss is returned by a SnapshotStore that holds nothing for the
// requested fingerprint.
var ErrSnapshotMiss = errors.New("similarity snapshot not found")

type SnapshotStore interface {
	GetSnapshot(ctx context.Context, fingerprint uint64) (*Snapshot, error)
	PutSnapshot(ctx context.Context, snap *Snapshot) error
}

type cachedModel struct {
	fingerprint uint64
	index       *Index
}

// ModelCache hands out the similarity index for a corpus, rebuilding only
// when the corpus fingerprint changes. Readers always see a complete model.
type ModelCache struct {
	mode    CacheMode
	store   SnapshotStore
	current atomic.Pointer[cachedModel]
	group   singleflight.Group
	build   func([]Document) *Index
}

func NewModelCache(mode CacheMode, store SnapshotStore) *ModelCache {
	switch mode {
	case CacheOff, CacheMemory, CacheRedis:
	default:
		mode = CacheMemory
	}
	if mode != CacheRedis {
		store = nil
	}
	return &ModelCache{
		mode:  mode,
		store: store,
		build: Build,
	}
}

func (c *ModelCache) Mode() CacheMode {
	return c.mode
}

// Fingerprint hashes (id, text) pairs in order. Any change to the published
// corpus gives a new fingerprint.
func Fingerprint(docs []Document) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, doc := range docs {
		binary.LittleEndian.PutUint64(buf[:], doc.GameID)
		_, _ = d.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(len(doc.Text)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(doc.Text)
	}
	return d.Sum64()
}

// Get returns the index for docs. Snapshot store failures are logged and the
// model is rebuilt locally.
func (c *ModelCache) Get(ctx context.Context, docs []Document) *Index {
	if c.mode == CacheOff {
		return c.buildTimed(docs)
	}

	fp := Fingerprint(docs)
	if cur := c.current.Load(); cur != nil && cur.fingerprint == fp {
		ModelLoadsTotal.WithLabelValues(SourceMemory).Inc()
		return cur.index
	}

	v, _, _ := c.group.Do(strconv.FormatUint(fp, 16), func() (any, error) {
		if cur := c.current.Load(); cur != nil && cur.fingerprint == fp {
			ModelLoadsTotal.WithLabelValues(SourceMemory).Inc()
			return cur.index, nil
		}

		if idx := c.loadSnapshot(ctx, fp); idx != nil {
			c.current.Store(&cachedModel{fingerprint: fp, index: idx})
			return idx, nil
		}

		idx := c.buildTimed(docs)
		c.current.Store(&cachedModel{fingerprint: fp, index: idx})

		if c.store != nil {
			if err := c.store.PutSnapshot(ctx, idx.Snapshot(fp)); err != nil {
				logger.Warn("similarity_snapshot_put_failed", "fingerprint", fp, "error", err)
			}
		}
		return idx, nil
	})

	return v.(*Index)
}

func (c *ModelCache) loadSnapshot(ctx context.Context, fp uint64) *Index {
	if c.store == nil {
		return nil
	}

	snap, err := c.store.GetSnapshot(ctx, fp)
	if err != nil {
		if !errors.Is(err, ErrSnapshotMiss) {
			logger.Warn("similarity_snapshot_get_failed", "fingerprint", fp, "error", err)
		}
		return nil
	}
	if snap.Fingerprint != fp {
		return nil
	}

	idx, err := FromSnapshot(snap)
	if err != nil {
		logger.Warn("similarity_snapshot_invalid", "fingerprint", fp, "error", err)
		return nil
	}

	ModelLoadsTotal.WithLabelValues(SourceSnapshot).Inc()
	return idx
}

func (c *ModelCache) buildTimed(docs []Document) *Index {
	start := time.Now()
	idx := c.build(docs)
	elapsed := time.Since(start)

	ModelLoadsTotal.WithLabelValues(SourceBuild).Inc()
	ModelBuildSeconds.Observe(elapsed.Seconds())
	logger.Info("similarity_model_built",
		"documents", len(docs),
		"duration_ms", elapsed.Milliseconds(),
	)
	return idx
}

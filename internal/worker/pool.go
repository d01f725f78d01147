package worker

// Asset cleanup runs off the request path: services enqueue object-store
// URLs onto a Redis list and the pool deletes them in the background. A
// failed delete is logged and dropped; an orphaned object is acceptable,
// a blocked or failed API request is not.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/storage"
)

const QueueAssetCleanup = "jobs:asset_cleanup"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AssetCleanupPayload carries the object-store URLs to delete.
type AssetCleanupPayload struct {
	URLs []string `json:"urls"`
}

// Dispatcher enqueues async jobs into Redis lists. The worker pool dequeues
// them via BRPOP. It satisfies the AssetCleaner contract the services depend
// on.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueDelete schedules object-store deletions. Enqueue failures are
// logged, never propagated: cleanup is best effort and the caller's write
// has already succeeded.
func (d *Dispatcher) EnqueueDelete(ctx context.Context, urls ...string) {
	if len(urls) == 0 {
		return
	}
	if err := d.enqueue(ctx, QueueAssetCleanup, "asset_cleanup", AssetCleanupPayload{URLs: urls}); err != nil {
		log.Warn().Err(err).Strs("urls", urls).Msg("asset_cleanup: failed to enqueue")
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the cleanup
// queue. Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, store *storage.Client, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, store, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, store *storage.Client, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAssetCleanup).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, store, result[1])
		}
	}
}

func processJob(ctx context.Context, store *storage.Client, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("asset_cleanup: failed to unmarshal job")
		return
	}
	var payload AssetCleanupPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("asset_cleanup: invalid payload")
		return
	}
	if store == nil {
		log.Warn().Int("urls", len(payload.URLs)).Msg("asset_cleanup: object store not configured, dropping job")
		return
	}
	for _, u := range payload.URLs {
		if err := store.Delete(ctx, u); err != nil {
			// No retries: an orphaned object is the accepted failure mode.
			log.Warn().Err(err).Str("url", u).Msg("asset_cleanup: delete failed")
			continue
		}
		log.Debug().Str("url", u).Msg("asset_cleanup: deleted")
	}
}

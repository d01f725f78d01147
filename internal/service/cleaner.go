package service

import "context"

// AssetCleaner detaches object-store deletions from record mutations: the
// services hand URLs over and move on. Deletion failures are logged by the
// implementation and never reach the caller — catalog integrity takes
// priority over storage hygiene.
type AssetCleaner interface {
	EnqueueDelete(ctx context.Context, urls ...string)
}

package bvh

import (
	"context"

	pool "github.com/jolestar/go-commons-pool/v2"
)

// cacheFactory produces and recycles *Cache values for CachePool. Clearing
// on return is the "cleanup callback" of the memory-pooling external
// collaborator — a borrowed cache always starts empty even if last used
// by a different render.
type cacheFactory struct{}

func (cacheFactory) MakeObject(ctx context.Context) (*pool.PooledObject, error) {
	return pool.NewPooledObject(NewCache()), nil
}

func (cacheFactory) DestroyObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (cacheFactory) ValidateObject(ctx context.Context, object *pool.PooledObject) bool {
	return true
}

func (cacheFactory) ActivateObject(ctx context.Context, object *pool.PooledObject) error {
	return nil
}

func (cacheFactory) PassivateObject(ctx context.Context, object *pool.PooledObject) error {
	c := object.Object.(*Cache)
	*c = Cache{}
	return nil
}

// CachePool is an arena of reusable per-worker last-hit caches, avoiding
// an allocation per worker on every render when a process renders many
// scenes back to back (e.g. the bench subcommand's repeated builds, or a
// long-lived render server). Each worker still owns exactly one Cache for
// the duration of its row stripe — the pool only amortizes allocation
// across renders, never sharing a Cache between concurrently running
// workers.
type CachePool struct {
	inner *pool.ObjectPool
}

// NewCachePool creates a pool with no fixed capacity limit — the render
// driver never borrows more caches than it has workers, so the natural
// ceiling is already bounded by nthreads.
func NewCachePool(ctx context.Context) *CachePool {
	cfg := pool.NewDefaultPoolConfig()
	cfg.MaxTotal = -1 // negative: no limit
	return &CachePool{inner: pool.NewObjectPool(ctx, cacheFactory{}, cfg)}
}

// Borrow obtains a reset *Cache from the pool, allocating one if none is
// idle.
func (p *CachePool) Borrow(ctx context.Context) (*Cache, error) {
	obj, err := p.inner.BorrowObject(ctx)
	if err != nil {
		return nil, err
	}
	return obj.(*Cache), nil
}

// Return releases a *Cache back to the pool for reuse by a later worker.
func (p *CachePool) Return(ctx context.Context, c *Cache) error {
	return p.inner.ReturnObject(ctx, c)
}

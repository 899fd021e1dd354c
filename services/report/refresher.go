package report

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"rental-backend/models"

	"golang.org/x/sync/errgroup"
)

const (
	targetProperty = "property"
	targetRoomType = "room-type"
)

type refreshTarget struct {
	kind       string
	id         uint
	propertyID uint
}

func (t refreshTarget) key(period PeriodConfig) string {
	return fmt.Sprintf("report-refresh:%s:%d:%s:%s", t.kind, t.id, period.PeriodType, period.PeriodKey)
}

// Refresher recomputes stale performance summary rows in the background.
type Refresher struct {
	store       Store
	cache       *SummaryCache
	lock        RefreshLocker
	ttl         time.Duration
	timeout     time.Duration
	concurrency int
	now         func() time.Time

	inflight sync.Map
	wg       sync.WaitGroup
}

// NewRefresher builds a refresher; lock may be nil.
func NewRefresher(store Store, cache *SummaryCache, lock RefreshLocker, cfg Config) *Refresher {
	return &Refresher{
		store:       store,
		cache:       cache,
		lock:        lock,
		ttl:         cfg.CacheTTL,
		timeout:     cfg.RefreshTimeout,
		concurrency: cfg.RefreshConcurrency,
		now:         time.Now,
	}
}

// Trigger refreshes, in its own goroutine, every property and room type touched by
// reservations whose cached row for the period is missing or older than the TTL.
// It never blocks and never reports failure to the caller; errors are logged.
func (r *Refresher) Trigger(ownerID uint, period PeriodConfig, w DateWindow, reservations []models.Reservation) {
	targets := targetsFromReservations(reservations)
	if len(targets) == 0 {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		errs := make(chan error, len(targets))
		r.run(ctx, ownerID, period, w, targets, false, errs)
		close(errs)
		for err := range errs {
			log.Printf("❌ report refresh failed (owner %d, %s %s): %v", ownerID, period.PeriodType, period.PeriodKey, err)
		}
	}()
}

// RefreshAll recomputes every row of the owner for the period synchronously, stale or not.
func (r *Refresher) RefreshAll(ctx context.Context, ownerID uint, period PeriodConfig, w DateWindow) error {
	roomTypes, err := r.store.OwnerRoomTypes(ctx, ownerID)
	if err != nil {
		return err
	}
	targets := targetsFromRoomTypes(roomTypes)

	errs := make(chan error, len(targets))
	r.run(ctx, ownerID, period, w, targets, true, errs)
	close(errs)

	var all []error
	for err := range errs {
		all = append(all, err)
	}
	return errors.Join(all...)
}

// Wait blocks until every triggered refresh has finished.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

func (r *Refresher) run(ctx context.Context, ownerID uint, period PeriodConfig, w DateWindow, targets []refreshTarget, force bool, errs chan<- error) {
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for _, t := range targets {
		g.Go(func() error {
			if err := r.refresh(ctx, ownerID, period, w, t, force); err != nil {
				errs <- fmt.Errorf("%s %d: %w", t.kind, t.id, err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Refresher) refresh(ctx context.Context, ownerID uint, period PeriodConfig, w DateWindow, t refreshTarget, force bool) error {
	key := t.key(period)
	if _, running := r.inflight.LoadOrStore(key, struct{}{}); running {
		return nil
	}
	defer r.inflight.Delete(key)

	if !force {
		stale, err := r.stale(ctx, t, period)
		if err != nil || !stale {
			return err
		}
	}

	if r.lock != nil {
		unlock, err := r.lock.TryLock(ctx, key, r.timeout)
		switch {
		case errors.Is(err, ErrLockHeld):
			return nil
		case err != nil:
			log.Printf("⚠️ report refresh lock %s unavailable, refreshing anyway: %v", key, err)
		default:
			defer func() {
				if err := unlock(context.Background()); err != nil {
					log.Printf("⚠️ report refresh lock %s release: %v", key, err)
				}
			}()
		}
	}

	return r.recompute(ctx, ownerID, period, w, t)
}

func (r *Refresher) stale(ctx context.Context, t refreshTarget, period PeriodConfig) (bool, error) {
	var last time.Time
	switch t.kind {
	case targetProperty:
		row, err := r.store.PropertySummaryRow(ctx, keyFor(t.id, period))
		if err != nil || row == nil {
			return row == nil, err
		}
		last = row.LastUpdated
	default:
		row, err := r.store.RoomTypeSummaryRow(ctx, keyFor(t.id, period))
		if err != nil || row == nil {
			return row == nil, err
		}
		last = row.LastUpdated
	}
	return r.now().Sub(last) > r.ttl, nil
}

func (r *Refresher) recompute(ctx context.Context, ownerID uint, period PeriodConfig, w DateWindow, t refreshTarget) error {
	q := ReservationQuery{Window: w, Lean: true}
	if t.kind == targetProperty {
		q.PropertyID = &t.id
	} else {
		q.RoomTypeID = &t.id
	}
	reservations, err := r.store.OwnerReservations(ctx, ownerID, q)
	if err != nil {
		return err
	}

	in := figuresFor(reservations).absolute()
	if t.kind == targetProperty {
		return r.cache.UpsertProperty(ctx, ownerID, t.id, period, in)
	}
	in.PropertyID = t.propertyID
	return r.cache.UpsertRoomType(ctx, ownerID, t.id, period, in)
}

// targetsFromReservations lists each distinct property and room type once.
func targetsFromReservations(reservations []models.Reservation) []refreshTarget {
	seenProperty := make(map[uint]bool)
	seenRoomType := make(map[uint]bool)
	var targets []refreshTarget
	for _, res := range reservations {
		if !seenProperty[res.PropertyID] {
			seenProperty[res.PropertyID] = true
			targets = append(targets, refreshTarget{kind: targetProperty, id: res.PropertyID, propertyID: res.PropertyID})
		}
		if !seenRoomType[res.RoomTypeID] {
			seenRoomType[res.RoomTypeID] = true
			targets = append(targets, refreshTarget{kind: targetRoomType, id: res.RoomTypeID, propertyID: res.PropertyID})
		}
	}
	return targets
}

func targetsFromRoomTypes(roomTypes []models.RoomType) []refreshTarget {
	seenProperty := make(map[uint]bool)
	var targets []refreshTarget
	for _, rt := range roomTypes {
		if !seenProperty[rt.PropertyID] {
			seenProperty[rt.PropertyID] = true
			targets = append(targets, refreshTarget{kind: targetProperty, id: rt.PropertyID, propertyID: rt.PropertyID})
		}
		targets = append(targets, refreshTarget{kind: targetRoomType, id: rt.ID, propertyID: rt.PropertyID})
	}
	return targets
}

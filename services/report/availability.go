package report

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// loadAvailability fetches the availability block of every room type concurrently.
// A failing room type is logged and gets a zeroed block; the batch always completes.
func (s *Service) loadAvailability(ctx context.Context, roomTypeIDs []uint, w DateWindow) map[uint]AvailabilityBlock {
	out := make(map[uint]AvailabilityBlock, len(roomTypeIDs))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.cfg.AvailabilityConcurrency)
	for _, id := range roomTypeIDs {
		g.Go(func() error {
			block, err := s.availabilityBlock(ctx, id, w)
			if err != nil {
				log.Printf("⚠️ report: availability of room type %d failed: %v", id, err)
				block = zeroAvailability()
			}
			mu.Lock()
			out[id] = block
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *Service) availabilityBlock(ctx context.Context, roomTypeID uint, w DateWindow) (AvailabilityBlock, error) {
	total, rows, err := s.store.RoomTypeAvailability(ctx, roomTypeID, w)
	if err != nil {
		return AvailabilityBlock{}, err
	}
	block := AvailabilityBlock{TotalQuantity: total, Dates: make([]AvailabilityDate, 0, len(rows))}
	for _, row := range rows {
		block.Dates = append(block.Dates, AvailabilityDate{
			Date:        row.Date.Format(dateLayout),
			Available:   row.AvailableCount,
			IsAvailable: row.AvailableCount > 0,
		})
	}
	return block, nil
}

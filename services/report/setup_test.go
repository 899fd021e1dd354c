package report

import (
	"testing"
	"time"

	"rental-backend/internal/testdb"

	"gorm.io/gorm"
)

// newTestService returns a service over a fresh database whose clock reads now.
// Background refreshes are drained before the database closes.
func newTestService(t *testing.T, now time.Time) (*Service, *gorm.DB, *testdb.Fixture) {
	t.Helper()
	db := testdb.Open(t)
	svc := NewService(NewGormStore(db), DefaultConfig(), nil)
	svc.now = func() time.Time { return now }
	t.Cleanup(svc.WaitForRefreshes)
	return svc, db, testdb.NewFixture(t, db)
}

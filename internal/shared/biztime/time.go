// Package biztime holds the business timezone. Storage and transport use UTC;
// the business zone is only for human facing timestamps such as admin
// notifications and receipts.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "Asia/Kolkata"

var (
	bizLocation *time.Location
	mu          sync.RWMutex
)

// Init loads tz (DefaultTimezone when empty) as the business timezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("load business timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, falling back to a fixed +05:30
// zone when Init was never called or tzdata is unavailable.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	if bizLocation == nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatBiz renders t in the business timezone.
func FormatBiz(t time.Time) string {
	return t.In(Location()).Format("02 Jan 2006 15:04 MST")
}

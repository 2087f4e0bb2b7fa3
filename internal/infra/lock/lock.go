// Package lock provides per-(shop, date) mutual exclusion for the booking
// write path, so the conflict check and the insert cannot interleave across
// concurrent requests.
package lock

import (
	"context"
	"fmt"
	"time"
)

// Locker serializes work under a (shopID, date) key.
type Locker interface {
	Acquire(ctx context.Context, shopID uint, date time.Time) (release func(), err error)
}

func key(shopID uint, date time.Time) string {
	return fmt.Sprintf("booking_lock:%d:%s", shopID, date.Format("2006-01-02"))
}

// Package service holds the business rules of the to-do API. Handlers
// translate HTTP into these calls; services talk to the store.
package service

import "time"

// clock returns now, or time.Now when now is nil. Timestamps are stored in
// UTC so both drivers order them the same way.
func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}

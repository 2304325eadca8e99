package clientdata

import "time"

// TTL constants for different data types.
// These are added to time.Now() when storing to calculate expires_at.
const (
	// Price history moves daily but analyses are interactive; a short TTL
	// keeps repeated lookups for the same company cheap while staying
	// close to "latest fetched data" semantics.
	TTLHistory = 15 * time.Minute

	// Ticker search results are effectively static name-to-symbol mappings.
	TTLSearch = 24 * time.Hour
)

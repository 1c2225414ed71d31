package domain

import "time"

// Campaign is a fundraising drive whose running total is updated
// transactionally as donations settle or are refunded.
type Campaign struct {
	ID           string     `firestore:"-"`
	Name         string     `firestore:"name"`
	Description  string     `firestore:"description"`
	Goal         int64      `firestore:"goal"`
	Raised       int64      `firestore:"raised"`
	DonorCount   int64      `firestore:"donorCount"`
	Currency     string     `firestore:"currency"`
	Active       bool       `firestore:"active"`
	StartDate    *time.Time `firestore:"startDate"`
	EndDate      *time.Time `firestore:"endDate"`
	TimeCreated  time.Time  `firestore:"timeCreated,serverTimestamp"`
	TimeModified time.Time  `firestore:"timeModified,serverTimestamp"`
}

package models

import "time"

// ObservedVote archives a vote event seen on the ledger.
// A voter votes once per resolution, so (resolution_id, voter) is unique.
type ObservedVote struct {
	ID           uint      `gorm:"primaryKey"`
	ResolutionID uint64    `gorm:"index:ux_resolution_voter,unique;index"`
	Voter        string    `gorm:"size:42;index:ux_resolution_voter,unique"`
	VoteType     string    `gorm:"size:16;index"` // "pour", "contre" or "neutre"
	BlockNumber  uint64    `gorm:"index"`
	TxHash       string    `gorm:"size:66"`
	ObservedAt   time.Time `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

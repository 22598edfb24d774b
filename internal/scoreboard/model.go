package scoreboard

import "time"

// Result is one finished (or abandoned) play of a level.
type Result struct {
	ID        uint   `gorm:"primaryKey"`
	SessionID string `gorm:"size:36;index"`
	Level     string `gorm:"size:128;index"`
	Seed      int64
	Duration  float64 // simulated seconds
	Completed bool
	Spawned   uint64
	Killed    uint64
	Escaped   uint64
	Shots     uint64
	Towers    uint64
	CreatedAt time.Time
}

func (Result) TableName() string { return "results" }

// KillRatio is the share of spawned enemies that were killed.
func (r *Result) KillRatio() float64 {
	if r.Spawned == 0 {
		return 0
	}
	return float64(r.Killed) / float64(r.Spawned)
}

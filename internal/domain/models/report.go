package models

import "time"

// HomeOccupancy is one line of an occupancy report.
type HomeOccupancy struct {
	HomeID           string `bson:"home_id" json:"home_id"`
	Name             string `bson:"name" json:"name"`
	Capacity         int    `bson:"capacity" json:"capacity"`
	CurrentOccupancy int    `bson:"current_occupancy" json:"current_occupancy"`
	TrackedResidents int    `bson:"tracked_residents" json:"tracked_residents"`
	OverCapacity     bool   `bson:"over_capacity" json:"over_capacity"`
}

// OccupancyReport represents the aggregated daily data archived in MongoDB.
type OccupancyReport struct {
	Date             time.Time       `bson:"date" json:"date"`
	Homes            []HomeOccupancy `bson:"homes" json:"homes"`
	TotalCapacity    int             `bson:"total_capacity" json:"total_capacity"`
	TotalOccupancy   int             `bson:"total_occupancy" json:"total_occupancy"`
	TrackedResidents int             `bson:"tracked_residents" json:"tracked_residents"`
	CheckupsDue      int             `bson:"checkups_due" json:"checkups_due"`
	CheckupsOverdue  int             `bson:"checkups_overdue" json:"checkups_overdue"`
	CreatedAt        time.Time       `bson:"created_at" json:"created_at"`
}

// CheckupItem is a resident checkup on the agenda.
type CheckupItem struct {
	ResidentID string `json:"resident_id"`
	Resident   string `json:"resident"`
	HomeID     string `json:"home_id"`
	Home       string `json:"home"`
	Due        Date   `json:"due"`
	Overdue    bool   `json:"overdue"`
}

package models

import "time"

// DailyReport is the farm summary produced once per day.
type DailyReport struct {
	Date          time.Time `bson:"date" json:"date"`
	FlockSize     int       `bson:"flock_size" json:"flock_size"`
	LayingBirds   int       `bson:"laying_birds" json:"laying_birds"`
	EggsCollected int       `bson:"eggs_collected" json:"eggs_collected"`
	CrackedEggs   int       `bson:"cracked_eggs" json:"cracked_eggs"`
	KienyejiEggs  int       `bson:"kienyeji_eggs" json:"kienyeji_eggs"`
	GradeEggs     int       `bson:"grade_eggs" json:"grade_eggs"`
	OrdersPlaced  int       `bson:"orders_placed" json:"orders_placed"`
	SalesAmount   float64   `bson:"sales_amount" json:"sales_amount"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

package models

import "time"

// EggRecord captures an egg collection count. CrackedEggCount is not checked
// against TotalEggCount.
type EggRecord struct {
	ID              uint64     `bson:"_id" json:"id"`
	EggType         EggType    `bson:"egg_type" json:"egg_type"`
	TotalEggCount   uint32     `bson:"total_egg_count" json:"total_egg_count"`
	CrackedEggCount uint32     `bson:"cracked_egg_count" json:"cracked_egg_count"`
	CreatedAt       time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `bson:"updated_at,omitempty" json:"updated_at"`
}

func (r EggRecord) RecordID() uint64 { return r.ID }

// EggRecordPayload carries the caller-supplied egg record fields.
type EggRecordPayload struct {
	EggType         EggType `json:"egg_type" binding:"required,oneof=Kienyeji Grade"`
	TotalEggCount   uint32  `json:"total_egg_count"`
	CrackedEggCount uint32  `json:"cracked_egg_count"`
}

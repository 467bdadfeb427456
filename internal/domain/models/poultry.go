package models

import "time"

// PoultryRecord describes a flock entry.
type PoultryRecord struct {
	ID            uint64     `bson:"_id" json:"id"`
	Breed         string     `bson:"breed" json:"breed"`
	Age           uint32     `bson:"age" json:"age"`
	EggProduction bool       `bson:"egg_production" json:"egg_production"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `bson:"updated_at,omitempty" json:"updated_at"`
}

func (r PoultryRecord) RecordID() uint64 { return r.ID }

// PoultryRecordPayload carries the caller-supplied poultry fields.
type PoultryRecordPayload struct {
	Breed         string `json:"breed"`
	Age           uint32 `json:"age"`
	EggProduction bool   `json:"egg_production"`
}

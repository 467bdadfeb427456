package models

import "time"

// EggOrder is immutable once placed. TotalPrice is computed from the unit
// price at placement time and never recomputed.
type EggOrder struct {
	ID           uint64    `bson:"_id" json:"id"`
	CustomerName string    `bson:"customer_name" json:"customer_name"`
	EggType      EggType   `bson:"egg_type" json:"egg_type"`
	Quantity     uint32    `bson:"quantity" json:"quantity"`
	TotalPrice   float64   `bson:"total_price" json:"total_price"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

func (o EggOrder) RecordID() uint64 { return o.ID }

// EggOrderPayload carries the caller-supplied order fields.
type EggOrderPayload struct {
	CustomerName string  `json:"customer_name"`
	EggType      EggType `json:"egg_type" binding:"required,oneof=Kienyeji Grade"`
	Quantity     uint32  `json:"quantity"`
}

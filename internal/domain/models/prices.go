package models

// EggPrice is a unit price for one egg type. Several prices may exist for the
// same type; order placement uses the one with the lowest id.
type EggPrice struct {
	ID      uint64  `bson:"_id" json:"id"`
	EggType EggType `bson:"egg_type" json:"egg_type"`
	Price   float64 `bson:"price" json:"price"`
}

func (p EggPrice) RecordID() uint64 { return p.ID }

// EggPricePayload carries the caller-supplied price fields.
type EggPricePayload struct {
	EggType EggType `json:"egg_type" binding:"required,oneof=Kienyeji Grade"`
	Price   float64 `json:"price"`
}

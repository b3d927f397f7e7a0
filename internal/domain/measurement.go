package domain

// BodyMeasurement is the body record for one calendar day. Weight is
// required; body fat and muscle mass are optional. At most one measurement
// exists per date (saves overwrite by date).
type BodyMeasurement struct {
	Date       string   `bson:"date" json:"date"` // YYYY-MM-DD
	Weight     float64  `bson:"weight" json:"weight"`
	BodyFat    *float64 `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"`       // percentage
	MuscleMass *float64 `bson:"muscleMass,omitempty" json:"muscleMass,omitempty"` // kg
}

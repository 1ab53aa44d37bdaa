package readings

import (
	"time"
)

// Reading is a persisted record of sensor measurements taken at a point in
// time for one patient. Document identity is assigned by the database and
// not surfaced through the API.
type Reading struct {
	ReadingAt time.Time     `bson:"reading_at" json:"reading_at"`
	Data      []Measurement `bson:"data" json:"data"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	Patient   PatientRef    `bson:"patient" json:"patient"`
}

// NewReading is the inbound payload for a reading. It deliberately has no
// created_at field: the server stamps that on insertion and never accepts it
// from the client. reading_at may be arbitrary; no ordering against
// created_at is enforced.
type NewReading struct {
	ReadingAt time.Time     `bson:"reading_at" json:"reading_at"`
	Data      []Measurement `bson:"data" json:"data"`
	Patient   PatientRef    `bson:"patient" json:"patient"`
}

// Stamp converts the payload into a persistable Reading, copying all fields
// verbatim and setting created_at to the given wall-clock time.
func (n NewReading) Stamp(now time.Time) Reading {
	return Reading{
		ReadingAt: n.ReadingAt,
		Data:      n.Data,
		CreatedAt: now,
		Patient:   n.Patient,
	}
}

// Measurement is one data point within a reading. Confidence is a float;
// older producers that sent integer confidences decode fine into it.
type Measurement struct {
	ServiceID  string  `bson:"service_id" json:"service_id"`
	Alias      *string `bson:"alias,omitempty" json:"alias"`
	Value      float32 `bson:"value" json:"value"`
	Confidence float64 `bson:"confidence" json:"confidence"`
}

// PatientRef identifies the patient a reading belongs to. It is embedded in
// each reading; there is no separately managed patient entity. Data carries
// arbitrary nested attributes with no enforced schema.
type PatientRef struct {
	BluetoothID string      `bson:"bluetooth_id" json:"bluetooth_id"`
	Alias       *string     `bson:"alias,omitempty" json:"alias"`
	Data        interface{} `bson:"data,omitempty" json:"data"`
}

package models

import (
	"time"

	"wellness-service/internal/engine"
	"wellness-service/internal/risk"
)

// WellnessSession is the stored form of one questionnaire run. The traversal
// state is owned by the engine; this document wraps it with identity and
// timing metadata plus the classification computed at completion.
type WellnessSession struct {
	ID        string         `bson:"_id,omitempty" json:"id"`
	UserID    string         `bson:"user_id" json:"user_id"`
	StartTime time.Time      `bson:"start_time" json:"start_time"`
	EndTime   time.Time      `bson:"end_time,omitempty" json:"end_time,omitempty"`
	State     engine.Session `bson:"state" json:"state"`
	Risk      *risk.Result   `bson:"risk,omitempty" json:"risk,omitempty"`
}

// Package domain defines the business logic for the fitness pipeline.
package domain

import (
	"errors"
	"fmt"
	"time"
)

// ActivityType enumerates the fixed workout categories.
type ActivityType string

const (
	ActivityRunning       ActivityType = "RUNNING"
	ActivityWalking       ActivityType = "WALKING"
	ActivitySwimming      ActivityType = "SWIMMING"
	ActivityCycling       ActivityType = "CYCLING"
	ActivityYoga          ActivityType = "YOGA"
	ActivityWeightLifting ActivityType = "WEIGHT_LIFTING"
	ActivityHIIT          ActivityType = "HIIT"
	ActivityDance         ActivityType = "DANCE"
	ActivityAerobics      ActivityType = "AEROBICS"
	ActivityPilates       ActivityType = "PILATES"
	ActivityHiking        ActivityType = "HIKING"
	ActivityRockClimbing  ActivityType = "ROCK_CLIMBING"
	ActivityBoxing        ActivityType = "BOXING"
	ActivityMartialArts   ActivityType = "MARTIAL_ARTS"
	ActivitySkiing        ActivityType = "SKIING"
	ActivitySnowboarding  ActivityType = "SNOWBOARDING"
	ActivityGolf          ActivityType = "GOLF"
	ActivityTennis        ActivityType = "TENNIS"
	ActivityBasketball    ActivityType = "BASKETBALL"
	ActivitySoccer        ActivityType = "SOCCER"
	ActivityBaseball      ActivityType = "BASEBALL"
	ActivityVolleyball    ActivityType = "VOLLEYBALL"
	ActivityCricket       ActivityType = "CRICKET"
)

var activityTypes = map[ActivityType]struct{}{
	ActivityRunning: {}, ActivityWalking: {}, ActivitySwimming: {},
	ActivityCycling: {}, ActivityYoga: {}, ActivityWeightLifting: {},
	ActivityHIIT: {}, ActivityDance: {}, ActivityAerobics: {},
	ActivityPilates: {}, ActivityHiking: {}, ActivityRockClimbing: {},
	ActivityBoxing: {}, ActivityMartialArts: {}, ActivitySkiing: {},
	ActivitySnowboarding: {}, ActivityGolf: {}, ActivityTennis: {},
	ActivityBasketball: {}, ActivitySoccer: {}, ActivityBaseball: {},
	ActivityVolleyball: {}, ActivityCricket: {},
}

// IsValid reports whether the value is one of the fixed categories.
func (t ActivityType) IsValid() bool {
	_, ok := activityTypes[t]
	return ok
}

// Activity represents one logged exercise session. It is immutable once
// published into the pipeline.
type Activity struct {
	ID                string
	UserID            string
	Type              ActivityType
	Duration          int // minutes
	CaloriesBurned    int
	StartTime         time.Time
	AdditionalMetrics map[string]any
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ErrInvalidActivity wraps producer-boundary validation failures.
var ErrInvalidActivity = errors.New("invalid activity")

// ValidateActivity rejects activities that must never enter the pipeline.
func ValidateActivity(a Activity) error {
	switch {
	case a.UserID == "":
		return fmt.Errorf("%w: missing user id", ErrInvalidActivity)
	case !a.Type.IsValid():
		return fmt.Errorf("%w: unknown activity type %q", ErrInvalidActivity, a.Type)
	case a.Duration <= 0:
		return fmt.Errorf("%w: duration must be positive", ErrInvalidActivity)
	case a.CaloriesBurned < 0:
		return fmt.Errorf("%w: calories burned must not be negative", ErrInvalidActivity)
	case a.StartTime.IsZero():
		return fmt.Errorf("%w: missing start time", ErrInvalidActivity)
	}
	return nil
}

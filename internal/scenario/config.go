// Package scenario drives an onboarding flow through the client and checks
// the backend's answers.
package scenario

import (
	"errors"
	"time"
)

// Config holds the parameters of a run.
type Config struct {
	Challenges int  // challenges posted by the donor
	Techfugees int  // applicants created concurrently
	Workers    int  // concurrent workers
	FillerText bool // fetch filler text for introductions
	Verbose    bool // log every step
}

// DefaultConfig returns a small run suitable for smoke checks.
func DefaultConfig() Config {
	return Config{
		Challenges: 2,
		Techfugees: 8,
		Workers:    4,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Challenges < 1:
		return errors.New("challenges must be at least 1")
	case c.Techfugees < 1:
		return errors.New("techfugees must be at least 1")
	case c.Workers < 1:
		return errors.New("workers must be at least 1")
	}
	return nil
}

// Stats summarises a run.
type Stats struct {
	DonatorID            uint
	ChallengesCreated    int
	TechfugeesCreated    int
	ApplicationsSent     int
	ApplicationsAccepted int
	StepsFailed          int
	StartTime            time.Time
	EndTime              time.Time
	Duration             time.Duration
}

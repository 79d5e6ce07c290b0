// Package repository holds the stub backend's entity store.
package repository

import (
	"context"

	"github.com/okian/donatugee/pkg/donatugee"
)

// Type aliases keep handler code free of the client package name.
type (
	Techfugee   = donatugee.Techfugee
	Donator     = donatugee.Donator
	Challenge   = donatugee.Challenge
	Application = donatugee.Application
)

// NewDonator is the input of InsertDonator. Password may be empty.
type NewDonator struct {
	Name     string
	Email    string
	Website  string
	Address  string
	Password string
}

// NewChallenge is the input of InsertChallenge.
type NewChallenge struct {
	DonatorID        uint
	Name             string
	Description      string
	LaptopType       string
	Amount           uint
	HardwareProvided string
	Duration         string
}

// Counts reports how many records of each entity are stored.
type Counts struct {
	Techfugees   int
	Donators     int
	Challenges   int
	Applications int
}

// Store provides the entity operations behind the backend routes.
type Store interface {
	// InsertTechfugee creates an applicant, or returns the existing one with the same email.
	InsertTechfugee(ctx context.Context, name, email, skills string) (Techfugee, error)
	Techfugee(ctx context.Context, id uint) (Techfugee, error)
	Techfugees(ctx context.Context) ([]Techfugee, error)
	LoginTechfugee(ctx context.Context, email string) (Techfugee, error)
	UpdateTechfugeeSkills(ctx context.Context, id uint, skills string) (Techfugee, error)
	UpdateTechfugee(ctx context.Context, id uint, city, introduction string) (Techfugee, error)
	UpdateAuth(ctx context.Context, id uint, passed string) (Techfugee, error)

	// InsertDonator creates a donor. Returns ErrExists when the email is taken.
	InsertDonator(ctx context.Context, d NewDonator) (Donator, error)
	Donator(ctx context.Context, id uint) (Donator, error)
	LoginDonator(ctx context.Context, email string) (Donator, error)
	// CheckDonatorPassword returns ErrInvalidCredentials unless password matches the stored hash.
	CheckDonatorPassword(ctx context.Context, id uint, password string) error

	InsertChallenge(ctx context.Context, c NewChallenge) (Challenge, error)
	Challenge(ctx context.Context, id uint) (Challenge, error)
	Challenges(ctx context.Context) ([]Challenge, error)
	ChallengesByDonator(ctx context.Context, donatorID uint) ([]Challenge, error)
	ChallengesByTechfugee(ctx context.Context, techfugeeID uint) ([]Challenge, error)

	// InsertApplication returns ErrExists for a repeated (techfugee, challenge) pair.
	InsertApplication(ctx context.Context, techfugeeID, challengeID uint) (Application, error)
	AcceptApplication(ctx context.Context, id uint) (Application, error)

	Count(ctx context.Context) Counts
}

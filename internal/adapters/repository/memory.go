package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/okian/donatugee/pkg/metrics"
	"golang.org/x/crypto/bcrypt"
)

// Entity labels for store metrics.
const (
	entityTechfugee   = "techfugee"
	entityDonator     = "donator"
	entityChallenge   = "challenge"
	entityApplication = "application"
)

// MemoryStore is a mutex-guarded, in-memory Store. IDs start at 1 per entity.
// Returned records are copies; callers may modify them freely.
type MemoryStore struct {
	mu sync.RWMutex

	techfugees   map[uint]Techfugee
	donators     map[uint]Donator
	challenges   map[uint]Challenge
	applications map[uint]Application
	passwords    map[uint][]byte // donator id -> bcrypt hash

	nextTechfugee   uint
	nextDonator     uint
	nextChallenge   uint
	nextApplication uint

	now        func() time.Time
	bcryptCost int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		techfugees:   make(map[uint]Techfugee),
		donators:     make(map[uint]Donator),
		challenges:   make(map[uint]Challenge),
		applications: make(map[uint]Application),
		passwords:    make(map[uint][]byte),
		now:          time.Now,
		bcryptCost:   bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Techfugees.

func (s *MemoryStore) InsertTechfugee(_ context.Context, name, email, skills string) (Techfugee, error) {
	if strings.TrimSpace(email) == "" {
		return Techfugee{}, fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.techfugeeByEmail(email); ok {
		return s.withTechfugeeApplications(t), nil
	}

	s.nextTechfugee++
	now := s.now()
	t := Techfugee{Name: name, Email: email, Skills: skills}
	t.ID, t.CreatedAt, t.UpdatedAt = s.nextTechfugee, now, now
	s.techfugees[t.ID] = t
	metrics.UpdateStoreRecords(entityTechfugee, len(s.techfugees))
	return t, nil
}

func (s *MemoryStore) Techfugee(_ context.Context, id uint) (Techfugee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.techfugees[id]
	if !ok {
		return Techfugee{}, fmt.Errorf("techfugee %d: %w", id, ErrNotFound)
	}
	return s.withTechfugeeApplications(t), nil
}

func (s *MemoryStore) Techfugees(_ context.Context) ([]Techfugee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Techfugee, 0, len(s.techfugees))
	for _, id := range sortedKeys(s.techfugees) {
		out = append(out, s.withTechfugeeApplications(s.techfugees[id]))
	}
	return out, nil
}

func (s *MemoryStore) LoginTechfugee(_ context.Context, email string) (Techfugee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.techfugeeByEmail(email)
	if !ok {
		return Techfugee{}, fmt.Errorf("techfugee %q: %w", email, ErrNotFound)
	}
	return s.withTechfugeeApplications(t), nil
}

func (s *MemoryStore) UpdateTechfugeeSkills(_ context.Context, id uint, skills string) (Techfugee, error) {
	return s.updateTechfugee(id, func(t *Techfugee) { t.Skills = skills })
}

func (s *MemoryStore) UpdateTechfugee(_ context.Context, id uint, city, introduction string) (Techfugee, error) {
	return s.updateTechfugee(id, func(t *Techfugee) {
		t.City = city
		t.Introduction = introduction
	})
}

func (s *MemoryStore) UpdateAuth(_ context.Context, id uint, passed string) (Techfugee, error) {
	return s.updateTechfugee(id, func(t *Techfugee) { t.Authenticated = passed })
}

func (s *MemoryStore) updateTechfugee(id uint, mutate func(*Techfugee)) (Techfugee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.techfugees[id]
	if !ok {
		return Techfugee{}, fmt.Errorf("techfugee %d: %w", id, ErrNotFound)
	}
	mutate(&t)
	t.UpdatedAt = s.now()
	s.techfugees[id] = t
	return s.withTechfugeeApplications(t), nil
}

func (s *MemoryStore) techfugeeByEmail(email string) (Techfugee, bool) {
	for _, id := range sortedKeys(s.techfugees) {
		if t := s.techfugees[id]; t.Email == email {
			return t, true
		}
	}
	return Techfugee{}, false
}

func (s *MemoryStore) withTechfugeeApplications(t Techfugee) Techfugee {
	t.Applications = s.applicationsWhere(func(a Application) bool { return a.TechfugeeID == t.ID })
	return t
}

// Donators.

func (s *MemoryStore) InsertDonator(_ context.Context, d NewDonator) (Donator, error) {
	if strings.TrimSpace(d.Email) == "" {
		return Donator{}, fmt.Errorf("%w: email required", ErrInvalidInput)
	}

	var hash []byte
	if d.Password != "" {
		var err error
		if hash, err = bcrypt.GenerateFromPassword([]byte(d.Password), s.bcryptCost); err != nil {
			return Donator{}, fmt.Errorf("hash password: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.donatorByEmail(d.Email); ok {
		return Donator{}, fmt.Errorf("donator %q: %w", d.Email, ErrExists)
	}

	s.nextDonator++
	now := s.now()
	out := Donator{Name: d.Name, Email: d.Email, Website: d.Website, Address: d.Address}
	out.ID, out.CreatedAt, out.UpdatedAt = s.nextDonator, now, now
	s.donators[out.ID] = out
	if hash != nil {
		s.passwords[out.ID] = hash
	}
	metrics.UpdateStoreRecords(entityDonator, len(s.donators))
	return out, nil
}

func (s *MemoryStore) Donator(_ context.Context, id uint) (Donator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.donators[id]
	if !ok {
		return Donator{}, fmt.Errorf("donator %d: %w", id, ErrNotFound)
	}
	return d, nil
}

func (s *MemoryStore) LoginDonator(_ context.Context, email string) (Donator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.donatorByEmail(email)
	if !ok {
		return Donator{}, fmt.Errorf("donator %q: %w", email, ErrNotFound)
	}
	return d, nil
}

func (s *MemoryStore) CheckDonatorPassword(_ context.Context, id uint, password string) error {
	s.mu.RLock()
	hash, ok := s.passwords[id]
	s.mu.RUnlock()
	if !ok {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("compare password: %w", err)
	}
	return nil
}

func (s *MemoryStore) donatorByEmail(email string) (Donator, bool) {
	for _, id := range sortedKeys(s.donators) {
		if d := s.donators[id]; d.Email == email {
			return d, true
		}
	}
	return Donator{}, false
}

// Challenges.

func (s *MemoryStore) InsertChallenge(_ context.Context, c NewChallenge) (Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.donators[c.DonatorID]; !ok {
		return Challenge{}, fmt.Errorf("donator %d: %w", c.DonatorID, ErrNotFound)
	}

	s.nextChallenge++
	now := s.now()
	out := Challenge{
		DonatorID:        c.DonatorID,
		Name:             c.Name,
		Description:      c.Description,
		LaptopType:       c.LaptopType,
		Amount:           c.Amount,
		HardwareProvided: c.HardwareProvided,
		Duration:         c.Duration,
	}
	out.ID, out.CreatedAt, out.UpdatedAt = s.nextChallenge, now, now
	s.challenges[out.ID] = out
	metrics.UpdateStoreRecords(entityChallenge, len(s.challenges))
	return out, nil
}

func (s *MemoryStore) Challenge(_ context.Context, id uint) (Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.challenges[id]
	if !ok {
		return Challenge{}, fmt.Errorf("challenge %d: %w", id, ErrNotFound)
	}
	return s.withChallengeApplications(c, nil), nil
}

func (s *MemoryStore) Challenges(_ context.Context) ([]Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.challengesWhere(func(Challenge) bool { return true }, nil), nil
}

func (s *MemoryStore) ChallengesByDonator(_ context.Context, donatorID uint) ([]Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.challengesWhere(func(c Challenge) bool { return c.DonatorID == donatorID }, nil), nil
}

// ChallengesByTechfugee returns the challenges the techfugee applied to. Each
// challenge carries only that techfugee's applications.
func (s *MemoryStore) ChallengesByTechfugee(_ context.Context, techfugeeID uint) ([]Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	applied := make(map[uint]bool)
	for _, a := range s.applications {
		if a.TechfugeeID == techfugeeID {
			applied[a.ChallengeID] = true
		}
	}

	only := func(a Application) bool { return a.TechfugeeID == techfugeeID }
	return s.challengesWhere(func(c Challenge) bool { return applied[c.ID] }, only), nil
}

// challengesWhere must be called with s.mu held.
func (s *MemoryStore) challengesWhere(keep func(Challenge) bool, appFilter func(Application) bool) []Challenge {
	out := make([]Challenge, 0)
	for _, id := range sortedKeys(s.challenges) {
		if c := s.challenges[id]; keep(c) {
			out = append(out, s.withChallengeApplications(c, appFilter))
		}
	}
	return out
}

func (s *MemoryStore) withChallengeApplications(c Challenge, extra func(Application) bool) Challenge {
	c.Applications = s.applicationsWhere(func(a Application) bool {
		return a.ChallengeID == c.ID && (extra == nil || extra(a))
	})
	return c
}

// Applications.

func (s *MemoryStore) InsertApplication(_ context.Context, techfugeeID, challengeID uint) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.techfugees[techfugeeID]; !ok {
		return Application{}, fmt.Errorf("techfugee %d: %w", techfugeeID, ErrNotFound)
	}
	if _, ok := s.challenges[challengeID]; !ok {
		return Application{}, fmt.Errorf("challenge %d: %w", challengeID, ErrNotFound)
	}
	for _, a := range s.applications {
		if a.TechfugeeID == techfugeeID && a.ChallengeID == challengeID {
			return a, fmt.Errorf("application %d/%d: %w", techfugeeID, challengeID, ErrExists)
		}
	}

	s.nextApplication++
	now := s.now()
	out := Application{TechfugeeID: techfugeeID, ChallengeID: challengeID}
	out.ID, out.CreatedAt, out.UpdatedAt = s.nextApplication, now, now
	s.applications[out.ID] = out
	metrics.UpdateStoreRecords(entityApplication, len(s.applications))
	return out, nil
}

func (s *MemoryStore) AcceptApplication(_ context.Context, id uint) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[id]
	if !ok {
		return Application{}, fmt.Errorf("application %d: %w", id, ErrNotFound)
	}
	a.Accepted = true
	a.UpdatedAt = s.now()
	s.applications[id] = a
	return a, nil
}

// applicationsWhere must be called with s.mu held.
func (s *MemoryStore) applicationsWhere(keep func(Application) bool) []Application {
	out := make([]Application, 0)
	for _, id := range sortedKeys(s.applications) {
		if a := s.applications[id]; keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Count returns the number of stored records per entity.
func (s *MemoryStore) Count(_ context.Context) Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Counts{
		Techfugees:   len(s.techfugees),
		Donators:     len(s.donators),
		Challenges:   len(s.challenges),
		Applications: len(s.applications),
	}
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

package scenario

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/okian/donatugee/pkg/logger"
	"github.com/okian/donatugee/pkg/metrics"
)

// Step names, also used as metric labels.
const (
	stepProbe     = "probe"
	stepDonator   = "create_donator"
	stepChallenge = "create_challenge"
	stepTechfugee = "onboard_techfugee"
	stepApply     = "submit_application"
	stepAccept    = "accept_application"
	stepVerify    = "verify"
)

const fillerWords = 25

var defaultSkills = []string{"go", "sql", "linux"}

// Runner executes the onboarding flow against one backend.
type Runner struct {
	client *donatugee.Client
	cfg    Config
	log    logger.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(client *donatugee.Client, cfg Config, log logger.Logger) *Runner {
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{client: client, cfg: cfg, log: log}
}

// Run executes the flow: probe, donor, challenges, concurrent techfugee
// onboarding with one application each, acceptance, then verification.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	stats := Stats{StartTime: time.Now()}
	if err := r.cfg.Validate(); err != nil {
		return stats, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	r.log.Info(ctx, "starting scenario",
		logger.String("baseURL", r.client.BaseURL()),
		logger.Int("challenges", r.cfg.Challenges),
		logger.Int("techfugees", r.cfg.Techfugees),
		logger.Int("workers", r.cfg.Workers))

	// Step 1: the backend answers at all
	if _, err := r.step(ctx, stepProbe, r.client.Challenges(ctx)); err != nil {
		return r.finish(ctx, stats, err)
	}

	// Step 2: donor
	donator, err := stepDecode[donatugee.Donator](ctx, r, stepDonator, r.client.CreateCompanyProfile(ctx, donatugee.CompanyProfile{
		Name:     "Scenario Corp",
		Email:    uniqueEmail("donator"),
		Password: uuid.NewString(),
		Website:  "https://example.org",
		Address:  "Example Street 1",
	}))
	if err != nil {
		return r.finish(ctx, stats, err)
	}
	stats.DonatorID = donator.ID

	// Step 3: challenges
	challenges := make([]donatugee.Challenge, 0, r.cfg.Challenges)
	for i := 0; i < r.cfg.Challenges; i++ {
		ch, err := stepDecode[donatugee.Challenge](ctx, r, stepChallenge, r.client.CreateChallenge(ctx, donatugee.NewChallenge{
			DonatorID:        donator.ID,
			Name:             fmt.Sprintf("Challenge %d", i+1),
			Description:      "Build and ship a small service",
			Duration:         "4 weeks",
			LaptopType:       "refurbished",
			Amount:           uint(r.cfg.Techfugees),
			HardwareProvided: "charger",
		}))
		if err != nil {
			return r.finish(ctx, stats, err)
		}
		challenges = append(challenges, ch)
	}
	stats.ChallengesCreated = len(challenges)

	// Step 4: techfugees onboard and apply concurrently
	var (
		mu           sync.Mutex
		applications []donatugee.Application
		created      atomic.Int64
	)
	idx := make([]int, r.cfg.Techfugees)
	for i := range idx {
		idx[i] = i
	}
	_, failed := runPool(ctx, r.cfg.Workers, idx, func(ctx context.Context, i int) error {
		app, err := r.onboard(ctx, challenges[i%len(challenges)].ID, &created)
		if err != nil {
			return err
		}
		mu.Lock()
		applications = append(applications, app)
		mu.Unlock()
		return nil
	})
	stats.TechfugeesCreated = int(created.Load())
	stats.ApplicationsSent = len(applications)
	stats.StepsFailed += int(failed)

	// Step 5: donor accepts every application
	accepted, failed := runPool(ctx, r.cfg.Workers, applications, func(ctx context.Context, a donatugee.Application) error {
		_, err := r.step(ctx, stepAccept, r.client.AcceptApplication(ctx, a.ID))
		return err
	})
	stats.ApplicationsAccepted = int(accepted)
	stats.StepsFailed += int(failed)

	if err := ctx.Err(); err != nil {
		return r.finish(ctx, stats, err)
	}

	// Step 6: the backend reflects what was done
	return r.finish(ctx, stats, r.verify(ctx, stats))
}

// onboard creates one techfugee, completes the profile and applies to
// challengeID. created counts the techfugee as soon as the backend accepts it.
func (r *Runner) onboard(ctx context.Context, challengeID uint, created *atomic.Int64) (donatugee.Application, error) {
	tf, err := stepDecode[donatugee.Techfugee](ctx, r, stepTechfugee, r.client.CreateTechfugeeProfile(ctx, donatugee.TechfugeeProfile{
		Name:  "Scenario Techfugee",
		Email: uniqueEmail("techfugee"),
	}))
	if err != nil {
		return donatugee.Application{}, err
	}
	created.Add(1)

	intro := "Hello, I would like to learn."
	if r.cfg.FillerText {
		if ft, err := donatugee.DecodeAs[donatugee.FillerText](r.client.RandomText(ctx, fillerWords)); err == nil {
			intro = stripParagraphs(ft.TextOut)
		} else {
			r.log.Warn(ctx, "filler text unavailable", logger.Error(err))
		}
	}

	for _, call := range []func() donatugee.Result{
		func() donatugee.Result {
			return r.client.AddSkills(ctx, donatugee.SkillsUpdate{ID: tf.ID, Skills: defaultSkills})
		},
		func() donatugee.Result {
			return r.client.UpdateTechfugeeDetails(ctx, donatugee.TechfugeeDetails{ID: tf.ID, City: "Berlin", Introduction: intro})
		},
		func() donatugee.Result {
			return r.client.UpdateAuth(ctx, donatugee.AuthStatus{ID: tf.ID, Passed: true})
		},
	} {
		if _, err := r.step(ctx, stepTechfugee, call()); err != nil {
			return donatugee.Application{}, err
		}
	}

	return stepDecode[donatugee.Application](ctx, r, stepApply, r.client.SubmitApplication(ctx, challengeID, tf.ID))
}

// step records the outcome of one call and converts failures into errors.
func (r *Runner) step(ctx context.Context, name string, res donatugee.Result) (donatugee.Result, error) {
	metrics.RecordScenarioStep(name, res.Outcome.String())
	if err := res.Error(); err != nil {
		r.log.Warn(ctx, "scenario step failed", logger.String("step", name), logger.Error(err))
		return res, fmt.Errorf("%w: %s: %w", ErrStep, name, err)
	}
	if r.cfg.Verbose {
		r.log.Info(ctx, "scenario step", logger.String("step", name), logger.String("operation", res.Operation))
	}
	return res, nil
}

func stepDecode[T any](ctx context.Context, r *Runner, name string, res donatugee.Result) (T, error) {
	var zero T
	if _, err := r.step(ctx, name, res); err != nil {
		return zero, err
	}
	v, err := donatugee.DecodeAs[T](res)
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrStep, name, err)
	}
	return v, nil
}

func (r *Runner) finish(ctx context.Context, stats Stats, err error) (Stats, error) {
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	fields := []logger.Field{
		logger.Uint("donatorID", stats.DonatorID),
		logger.Int("challengesCreated", stats.ChallengesCreated),
		logger.Int("techfugeesCreated", stats.TechfugeesCreated),
		logger.Int("applicationsSent", stats.ApplicationsSent),
		logger.Int("applicationsAccepted", stats.ApplicationsAccepted),
		logger.Int("stepsFailed", stats.StepsFailed),
		logger.Duration("duration", stats.Duration),
	}
	if err != nil {
		r.log.Error(ctx, "scenario failed", append(fields, logger.Error(err))...)
		return stats, err
	}
	r.log.Info(ctx, "scenario completed", fields...)
	return stats, nil
}

func uniqueEmail(role string) string {
	return role + "-" + uuid.NewString() + "@scenario.example.org"
}

func stripParagraphs(s string) string {
	s = strings.NewReplacer("<p>", "", "</p>", " ", "\r", "").Replace(s)
	return strings.TrimSpace(s)
}

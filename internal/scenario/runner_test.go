package scenario_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/donatugee/internal/adapters/http/backend"
	"github.com/okian/donatugee/internal/adapters/repository"
	"github.com/okian/donatugee/internal/scenario"
	"github.com/okian/donatugee/pkg/donatugee"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"
)

func newClient(srv *httptest.Server) *donatugee.Client {
	client, err := donatugee.New(srv.URL+backend.APIPrefix,
		donatugee.WithHTTPClient(srv.Client()),
		donatugee.WithFillerTextURL(srv.URL+backend.FillerTextPrefix+"/p-1/"),
	)
	So(err, ShouldBeNil)
	return client
}

func TestRunner(t *testing.T) {
	Convey("Given a stub backend", t, func() {
		store := repository.NewMemoryStore(repository.WithBcryptCost(bcrypt.MinCost))
		srv := httptest.NewServer(backend.NewServer(store).Handler())
		defer srv.Close()
		ctx := context.Background()

		Convey("When running the scenario with filler text", func() {
			cfg := scenario.Config{Challenges: 3, Techfugees: 10, Workers: 4, FillerText: true}
			stats, err := scenario.NewRunner(newClient(srv), cfg, nil).Run(ctx)

			Convey("Then every step succeeds and the store holds the records", func() {
				So(err, ShouldBeNil)
				So(stats.ChallengesCreated, ShouldEqual, 3)
				So(stats.TechfugeesCreated, ShouldEqual, 10)
				So(stats.ApplicationsSent, ShouldEqual, 10)
				So(stats.ApplicationsAccepted, ShouldEqual, 10)
				So(stats.StepsFailed, ShouldEqual, 0)
				So(stats.Duration > 0, ShouldBeTrue)
				So(store.Count(ctx), ShouldResemble, repository.Counts{
					Techfugees: 10, Donators: 1, Challenges: 3, Applications: 10,
				})
			})

			Convey("Then introductions come from the filler text route", func() {
				tf, err := store.Techfugee(ctx, 1)
				So(err, ShouldBeNil)
				So(tf.Introduction, ShouldNotEqual, "Hello, I would like to learn.")
				So(tf.Introduction, ShouldNotContainSubstring, "<p>")
			})
		})

		Convey("When running twice against the same backend", func() {
			client := newClient(srv)
			_, err1 := scenario.NewRunner(client, scenario.DefaultConfig(), nil).Run(ctx)
			_, err2 := scenario.NewRunner(client, scenario.DefaultConfig(), nil).Run(ctx)

			Convey("Then unique emails keep the runs apart", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(store.Count(ctx).Donators, ShouldEqual, 2)
			})
		})

		Convey("When the config is invalid", func() {
			_, err := scenario.NewRunner(newClient(srv), scenario.Config{Challenges: 1, Techfugees: 1}, nil).Run(ctx)

			Convey("Then the run does not start", func() {
				So(errors.Is(err, scenario.ErrInvalidConfig), ShouldBeTrue)
				So(store.Count(ctx).Donators, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a backend that rejects everything", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "down", http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		Convey("When running the scenario", func() {
			_, err := scenario.NewRunner(newClient(srv), scenario.DefaultConfig(), nil).Run(context.Background())

			Convey("Then the probe step fails", func() {
				So(errors.Is(err, scenario.ErrStep), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "probe")
			})
		})
	})

	Convey("Given a backend that rejects auth updates", t, func() {
		store := repository.NewMemoryStore(repository.WithBcryptCost(bcrypt.MinCost))
		api := backend.NewServer(store).Handler()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == backend.APIPrefix+"/"+donatugee.PathUpdateAuth {
				http.Error(w, "auth service down", http.StatusInternalServerError)
				return
			}
			api.ServeHTTP(w, r)
		}))
		defer srv.Close()
		ctx := context.Background()

		Convey("When running the scenario", func() {
			cfg := scenario.Config{Challenges: 2, Techfugees: 8, Workers: 4}
			stats, err := scenario.NewRunner(newClient(srv), cfg, nil).Run(ctx)

			Convey("Then creations are counted even though onboarding fails", func() {
				So(err, ShouldNotBeNil)
				So(stats.TechfugeesCreated, ShouldEqual, 8)
				So(store.Count(ctx).Techfugees, ShouldEqual, 8)
				So(stats.ApplicationsSent, ShouldEqual, 0)
				So(stats.StepsFailed, ShouldEqual, 8)
			})
		})
	})

	Convey("Given a cancelled context", t, func() {
		store := repository.NewMemoryStore(repository.WithBcryptCost(bcrypt.MinCost))
		srv := httptest.NewServer(backend.NewServer(store).Handler())
		defer srv.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		Convey("When running the scenario", func() {
			_, err := scenario.NewRunner(newClient(srv), scenario.DefaultConfig(), nil).Run(ctx)

			Convey("Then it fails without touching the store", func() {
				So(err, ShouldNotBeNil)
				So(store.Count(ctx).Donators, ShouldEqual, 0)
			})
		})
	})
}

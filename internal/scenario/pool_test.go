package scenario

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRunPool(t *testing.T) {
	Convey("Given 100 items and 8 workers", t, func() {
		items := make([]int, 100)
		for i := range items {
			items[i] = i
		}

		Convey("When every odd item fails", func() {
			var seen int64
			ok, failed := runPool(context.Background(), 8, items, func(_ context.Context, i int) error {
				atomic.AddInt64(&seen, 1)
				if i%2 == 1 {
					return errors.New("odd")
				}
				return nil
			})

			Convey("Then each item runs once and results are counted", func() {
				So(seen, ShouldEqual, int64(100))
				So(ok, ShouldEqual, int64(50))
				So(failed, ShouldEqual, int64(50))
			})
		})

		Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			ok, failed := runPool(ctx, 8, items, func(context.Context, int) error { return nil })

			Convey("Then no item completes", func() {
				So(ok+failed, ShouldEqual, int64(0))
			})
		})
	})
}

func TestConfigValidate(t *testing.T) {
	Convey("The default config is valid and zero counts are not", t, func() {
		So(DefaultConfig().Validate(), ShouldBeNil)
		So(Config{Challenges: 0, Techfugees: 1, Workers: 1}.Validate(), ShouldNotBeNil)
		So(Config{Challenges: 1, Techfugees: 0, Workers: 1}.Validate(), ShouldNotBeNil)
		So(Config{Challenges: 1, Techfugees: 1, Workers: 0}.Validate(), ShouldNotBeNil)
	})
}

package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/donatugee/internal/config"
	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New(context.Background())

		convey.Convey("Then it should point at the production endpoints", func() {
			convey.So(cfg.BaseURL, convey.ShouldEqual, donatugee.DefaultBaseURL)
			convey.So(cfg.FillerTextURL, convey.ShouldEqual, donatugee.DefaultFillerTextURL)
			convey.So(cfg.Timeout, convey.ShouldEqual, time.Duration(0))
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.StubAddr, convey.ShouldEqual, ":8081")
			convey.So(cfg.StubMetrics, convey.ShouldBeTrue)
		})

		convey.Convey("Then it should pass validation", func() {
			convey.So(config.Validate(context.Background(), cfg), convey.ShouldBeNil)
		})
	})
}

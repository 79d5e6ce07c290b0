package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/donatugee/internal/config"
	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, donatugee.DefaultBaseURL)
				convey.So(cfg.FillerTextURL, convey.ShouldEqual, donatugee.DefaultFillerTextURL)
				convey.So(cfg.RequestIDs, convey.ShouldBeFalse)
				convey.So(cfg.StubMetrics, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DONATUGEE_BASE_URL", "http://localhost:8081/api/v1/")
			_ = os.Setenv("DONATUGEE_TIMEOUT", "5s")
			_ = os.Setenv("DONATUGEE_REQUEST_IDS", "true")
			_ = os.Setenv("DONATUGEE_LOG_LEVEL", "debug")
			_ = os.Setenv("DONATUGEE_STUB_METRICS", "false")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://localhost:8081/api/v1/")
				convey.So(cfg.Timeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.RequestIDs, convey.ShouldBeTrue)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.StubMetrics, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			tmpFile := createTempConfigFile(t, `
base_url: "http://127.0.0.1:9000/api/v1/"
filler_text_url: "http://127.0.0.1:9000/gibberish/p-1/"
timeout: 2s
user_agent: "tests"
stub_addr: ":9000"
`)
			_ = os.Setenv("DONATUGEE_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://127.0.0.1:9000/api/v1/")
				convey.So(cfg.FillerTextURL, convey.ShouldEqual, "http://127.0.0.1:9000/gibberish/p-1/")
				convey.So(cfg.Timeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.UserAgent, convey.ShouldEqual, "tests")
				convey.So(cfg.StubAddr, convey.ShouldEqual, ":9000")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			tmpFile := createTempConfigFile(t, `
base_url: "http://127.0.0.1:9000/api/v1/"
stub_addr: ":9000"
`)
			_ = os.Setenv("DONATUGEE_CONFIG", tmpFile)
			_ = os.Setenv("DONATUGEE_STUB_ADDR", ":7000")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://127.0.0.1:9000/api/v1/")
				convey.So(cfg.StubAddr, convey.ShouldEqual, ":7000")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(t, `invalid: yaml: content: [`)
			_ = os.Setenv("DONATUGEE_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("DONATUGEE_CONFIG", "/non/existent/donatugee.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the base URL is not a URL", func() {
			_ = os.Setenv("DONATUGEE_BASE_URL", "not a url")

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the log level is unknown", func() {
			_ = os.Setenv("DONATUGEE_LOG_LEVEL", "chatty")

			_, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestValidateNil(t *testing.T) {
	convey.Convey("Given a nil config", t, func() {
		err := config.Validate(context.Background(), nil)

		convey.Convey("Then it should be invalid", func() {
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"DONATUGEE_CONFIG",
		"DONATUGEE_BASE_URL",
		"DONATUGEE_FILLER_TEXT_URL",
		"DONATUGEE_TIMEOUT",
		"DONATUGEE_USER_AGENT",
		"DONATUGEE_REQUEST_IDS",
		"DONATUGEE_LOG_LEVEL",
		"DONATUGEE_LOG_FORMAT",
		"DONATUGEE_STUB_ADDR",
		"DONATUGEE_STUB_METRICS",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "donatugee-*.yaml")
	if err != nil {
		t.Fatalf("create temp config: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	_ = f.Close()
	return f.Name()
}

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When Init is called", func() {
			err := Init()

			Convey("Then Get should return a usable logger", func() {
				So(err, ShouldBeNil)
				So(Get(), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
			})
		})

		Convey("When InitWithWriter gets an unknown format", func() {
			err := InitWithWriter(&bytes.Buffer{}, "xml")

			Convey("Then it should fail", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown log format")
			})
		})

		Convey("When InitWithWriter gets a nil writer", func() {
			Convey("Then it should fail", func() {
				So(InitWithWriter(nil, FormatText), ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerJSONOutput(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf, FormatJSON), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging an info entry with fields", func() {
			Named("client").Info(ctx, "request done",
				String("operation", "challenge"),
				Int("status", 200),
				Error(errors.New("boom")))

			var entry map[string]any
			err := json.Unmarshal(buf.Bytes(), &entry)

			Convey("Then the entry should carry message, fields and caller", func() {
				So(err, ShouldBeNil)
				So(entry["msg"], ShouldEqual, "request done")
				So(entry["logger"], ShouldEqual, "client")
				So(entry["operation"], ShouldEqual, "challenge")
				So(entry["status"], ShouldEqual, float64(200))
				So(entry["source"], ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When debug is logged at info level", func() {
			Get().Debug(ctx, "hidden")

			Convey("Then nothing should be written", func() {
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(SetLevelString("DEBUG"), ShouldBeNil)
			Get().Debug(ctx, "visible")

			Convey("Then the debug entry should be written", func() {
				So(strings.Contains(buf.String(), "visible"), ShouldBeTrue)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(Init(), ShouldBeNil)

		Convey("Then known levels should parse", func() {
			for _, lvl := range []string{"debug", "info", "", "warn", "warning", "error", " Info "} {
				So(SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown levels should fail", func() {
			So(SetLevelString("verbose"), ShouldNotBeNil)
		})
	})
}

func TestNop(t *testing.T) {
	Convey("Given the no-op logger", t, func() {
		l := Nop()

		Convey("Then every method should be safe to call", func() {
			So(func() {
				ctx := context.Background()
				l.Info(ctx, "x")
				l.Warn(ctx, "x")
				l.Error(ctx, "x", Error(errors.New("y")))
				l.Named("child").Debug(ctx, "x")
			}, ShouldNotPanic)
		})
	})
}

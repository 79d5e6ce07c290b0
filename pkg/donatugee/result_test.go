package donatugee_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/okian/donatugee/pkg/donatugee"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResult(t *testing.T) {
	Convey("Given results of each outcome", t, func() {
		ok := donatugee.Result{
			Operation: donatugee.PathTechfugee,
			Outcome:   donatugee.OutcomeSuccess,
			Response:  &donatugee.Response{StatusCode: http.StatusOK, Body: []byte(`{"ID":4,"Skills":"[\"go\"]"}`)},
		}
		failed := donatugee.Result{
			Operation: donatugee.PathTechfugee,
			Outcome:   donatugee.OutcomeErrorResponse,
			Response:  &donatugee.Response{StatusCode: http.StatusNotFound, Body: []byte(`{"code":"not_found"}`)},
		}
		lost := donatugee.Result{Operation: donatugee.PathTechfugee, Outcome: donatugee.OutcomeTransportFailure}

		Convey("Then outcomes have stable names", func() {
			So(donatugee.OutcomeSuccess.String(), ShouldEqual, "success")
			So(donatugee.OutcomeErrorResponse.String(), ShouldEqual, "error_response")
			So(donatugee.OutcomeTransportFailure.String(), ShouldEqual, "transport_failure")
			So(donatugee.Outcome(9).String(), ShouldEqual, "outcome(9)")
		})

		Convey("Then a success decodes into the model", func() {
			tf, err := donatugee.DecodeAs[donatugee.Techfugee](ok)
			So(err, ShouldBeNil)
			So(tf.ID, ShouldEqual, uint(4))
			So(tf.SkillList(), ShouldResemble, []string{"go"})
		})

		Convey("Then an error response refuses DecodeAs but allows Decode", func() {
			_, err := donatugee.DecodeAs[donatugee.Techfugee](failed)
			var statusErr *donatugee.StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Error(), ShouldContainSubstring, "404 Not Found")

			var payload map[string]string
			So(failed.Decode(&payload), ShouldBeNil)
			So(payload["code"], ShouldEqual, "not_found")
		})

		Convey("Then a transport failure without cause reports no response", func() {
			So(errors.Is(lost.Error(), donatugee.ErrNoResponse), ShouldBeTrue)
			So(errors.Is(lost.Decode(&struct{}{}), donatugee.ErrDecode), ShouldBeTrue)
		})

		Convey("Then a malformed body is a decode error", func() {
			bad := ok
			bad.Response = &donatugee.Response{StatusCode: http.StatusOK, Body: []byte(`<html>`)}
			_, err := donatugee.DecodeAs[donatugee.Challenge](bad)
			So(errors.Is(err, donatugee.ErrDecode), ShouldBeTrue)
		})
	})
}

package swagger

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/okian/donatugee/pkg/donatugee"
	"github.com/smartystreets/goconvey/convey"
)

func TestSwaggerHandler(t *testing.T) {
	convey.Convey("Given a router with the docs routes", t, func() {
		r := chi.NewRouter()
		Register(r)

		convey.Convey("When requesting /openapi.yaml", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, OpenAPIPath, http.NoBody))

			convey.Convey("Then the embedded document is served as yaml", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldStartWith, "openapi: 3")
			})
		})

		convey.Convey("When requesting /api-docs", func() {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, DocsPath, http.NoBody))

			convey.Convey("Then the ReDoc page points at the document", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "redoc-container")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, OpenAPIPath)
			})
		})
	})
}

func TestOpenAPICoversClientPaths(t *testing.T) {
	convey.Convey("Every path the client calls is documented", t, func() {
		doc := string(OpenAPI)
		for _, p := range []string{
			donatugee.PathInsertDonator, donatugee.PathInsertTechfugee, donatugee.PathLoginDonator,
			donatugee.PathAddSkills, donatugee.PathChallenges, donatugee.PathApplicationByTechfugee,
			donatugee.PathChallenge, donatugee.PathTechfugee, donatugee.PathUpdateTechfugee,
			donatugee.PathDonator, donatugee.PathUpdateAuth, donatugee.PathInsertApplication,
			donatugee.PathChallengesByDonator, donatugee.PathInsertChallenge, donatugee.PathAcceptApplication,
		} {
			convey.So(strings.Contains(doc, "\n  /"+p+":\n"), convey.ShouldBeTrue)
		}
	})
}

func TestRegisterNil(t *testing.T) {
	convey.Convey("Register panics on a nil router", t, func() {
		convey.So(func() { Register(nil) }, convey.ShouldPanic)
	})
}

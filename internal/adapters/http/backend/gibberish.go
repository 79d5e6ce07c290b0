package backend

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/okian/donatugee/pkg/donatugee"
)

// Bounds of the filler-text route.
const (
	maxParagraphs = 50
	maxWords      = 5000
)

var gibberishWords = strings.Fields(`
	laptop donate skill learn code build challenge apply accept mentor city
	hardware welcome future network open source team start grow share teach
	ready cable screen keyboard battery project commit review deploy test
`)

// gibberish serves /p-{paragraphs}/{length}. Length is either a word count
// or a "min-max" range.
func (s *Server) gibberish(w http.ResponseWriter, r *http.Request) {
	const op = "backend.gibberish"
	paragraphs, err := strconv.Atoi(chi.URLParam(r, "paragraphs"))
	if err != nil || paragraphs < 1 || paragraphs > maxParagraphs {
		s.writeError(r.Context(), w, op, fmt.Errorf("%w: paragraphs must be 1..%d", ErrBadRequest, maxParagraphs))
		return
	}
	lo, hi, err := parseLength(chi.URLParam(r, "length"))
	if err != nil {
		s.writeError(r.Context(), w, op, err)
		return
	}

	var b strings.Builder
	for p := 0; p < paragraphs; p++ {
		b.WriteString("<p>")
		b.WriteString(sentence(lo + rand.Intn(hi-lo+1)))
		b.WriteString("</p>\r")
	}
	writeJSON(w, http.StatusOK, donatugee.FillerText{
		Type:      "gibberish",
		Amount:    paragraphs,
		Number:    strconv.Itoa(lo),
		NumberMax: strconv.Itoa(hi),
		Format:    "p",
		Time:      time.Now().Format(time.DateTime),
		TextOut:   b.String(),
	})
}

func parseLength(raw string) (int, int, error) {
	loRaw, hiRaw, isRange := strings.Cut(raw, "-")
	lo, err := strconv.Atoi(loRaw)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: length %q", ErrBadRequest, raw)
	}
	hi := lo
	if isRange {
		if hi, err = strconv.Atoi(hiRaw); err != nil {
			return 0, 0, fmt.Errorf("%w: length %q", ErrBadRequest, raw)
		}
	}
	if lo < 1 || hi < lo || hi > maxWords {
		return 0, 0, fmt.Errorf("%w: length must be 1..%d", ErrBadRequest, maxWords)
	}
	return lo, hi, nil
}

// sentence returns n words, capitalised and terminated with a full stop.
func sentence(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = gibberishWords[rand.Intn(len(gibberishWords))]
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}

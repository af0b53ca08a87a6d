package browser

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"coursecatalog/internal/model"
	"coursecatalog/internal/requirement"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coursesJSON = `[
	{"code": "B101", "name": "Painting", "BreadthRequirement": "Arts (1)", "DistributionRequirementStatus": "This is a Humanities course"},
	{"code": "A201", "name": "Sculpture", "BreadthRequirement": "Arts (1) + Society (3)", "DistributionRequirementStatus": "This is a Humanities or Social Science course"},
	{"code": "C301", "name": "Physics", "BreadthRequirement": "Physical Universe (5)", "DistributionRequirementStatus": "This is a Science course"},
	{"code": "D401", "name": "Seminar", "BreadthRequirement": "None", "DistributionRequirementStatus": null}
]`

const offeringsJSON = `[
	{"code": "B101H1F", "term": "F", "section": "L0101", "time": "MW10", "location": "SS 2102", "instructor": "Smith"}
]`

func writeBody(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func newTestBrowser(t *testing.T, courses, offerings http.HandlerFunc) (*Browser, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/courses", courses)
	mux.HandleFunc("/api/offerings", offerings)
	srv := httptest.NewServer(mux)

	client := NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	t.Cleanup(func() {
		client.CloseIdleConnections()
		srv.Close()
	})
	return New(client, zerolog.Nop()), srv
}

func courseCodes(courses []model.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Code)
	}
	return out
}

func TestInitialState(t *testing.T) {
	b := New(NewClient("http://127.0.0.1:0", time.Second, zerolog.Nop()), zerolog.Nop())
	s := b.Snapshot()

	assert.Equal(t, NotLoaded, s.CoursesStatus())
	assert.Equal(t, NotLoaded, s.OfferingsStatus())
	assert.Empty(t, s.Courses)
	assert.Empty(t, s.BreadthReqs)
	assert.Equal(t, requirement.KindBreadth, s.ShowTab)
	assert.Equal(t, requirement.Kind(""), s.SearchKind)
}

func TestLoadSuccess(t *testing.T) {
	b, _ := newTestBrowser(t, writeBody(http.StatusOK, coursesJSON), writeBody(http.StatusOK, offeringsJSON))

	b.Load(context.Background())
	s := b.Snapshot()

	assert.Equal(t, Loaded, s.CoursesStatus())
	assert.True(t, s.CoursesLoaded)
	assert.NoError(t, s.CoursesError)
	assert.Len(t, s.Courses, 4)

	assert.Equal(t, []string{"Arts (1)", "Society (3)", "Physical Universe (5)"}, s.BreadthReqs)
	assert.Equal(t, []string{"Humanities", "Science", "Social Science"}, s.DistributionReqs)
	assert.Equal(t, []string{"B101", "A201"}, courseCodes(s.BreadthReqMap["Arts (1)"]))

	assert.Equal(t, Loaded, s.OfferingsStatus())
	require.Len(t, s.Offerings, 1)
	assert.Equal(t, "B101H1F", s.Offerings[0].Code)
	require.NotNil(t, s.Offerings[0].Instructor)
	assert.Equal(t, "Smith", *s.Offerings[0].Instructor)
}

func TestSearch(t *testing.T) {
	b, _ := newTestBrowser(t, writeBody(http.StatusOK, coursesJSON), writeBody(http.StatusOK, offeringsJSON))
	b.Load(context.Background())

	results := b.SearchByBreadthReq("Arts (1)")
	assert.Equal(t, []string{"A201", "B101"}, courseCodes(results))

	s := b.Snapshot()
	assert.Equal(t, requirement.KindBreadth, s.SearchKind)
	assert.Equal(t, "Arts (1)", s.BreadthReq)
	assert.Equal(t, []string{"A201", "B101"}, courseCodes(s.SearchResults))
	// The index keeps insertion order.
	assert.Equal(t, []string{"B101", "A201"}, courseCodes(s.BreadthReqMap["Arts (1)"]))

	results = b.SearchByDistributionReq("Humanities")
	assert.Equal(t, []string{"A201", "B101"}, courseCodes(results))
	s = b.Snapshot()
	assert.Equal(t, requirement.KindDistribution, s.SearchKind)
	assert.Equal(t, "Humanities", s.DistributionReq)
	assert.Equal(t, "Arts (1)", s.BreadthReq)

	results, err := b.Search(requirement.KindDistribution, "Science")
	require.NoError(t, err)
	assert.Equal(t, []string{"C301"}, courseCodes(results))

	_, err = b.Search("elective", "Science")
	assert.Error(t, err)
}

func TestSearchUnknownCategory(t *testing.T) {
	b, _ := newTestBrowser(t, writeBody(http.StatusOK, coursesJSON), writeBody(http.StatusOK, offeringsJSON))
	b.Load(context.Background())

	results := b.SearchByBreadthReq("Nonexistent (7)")
	assert.NotNil(t, results)
	assert.Empty(t, results)

	s := b.Snapshot()
	assert.Empty(t, s.SearchResults)
	assert.Equal(t, "Nonexistent (7)", s.BreadthReq)
}

func TestSearchBeforeLoad(t *testing.T) {
	b := New(NewClient("http://127.0.0.1:0", time.Second, zerolog.Nop()), zerolog.Nop())
	assert.Empty(t, b.SearchByDistributionReq("Humanities"))
}

func TestCoursesFailureIsIndependentOfOfferings(t *testing.T) {
	for _, offeringsStatus := range []int{http.StatusOK, http.StatusInternalServerError} {
		t.Run(http.StatusText(offeringsStatus), func(t *testing.T) {
			b, srv := newTestBrowser(t,
				writeBody(http.StatusInternalServerError, "database is locked"),
				writeBody(offeringsStatus, offeringsJSON),
			)

			b.Load(context.Background())
			s := b.Snapshot()

			assert.False(t, s.CoursesLoaded)
			assert.Equal(t, Failed, s.CoursesStatus())
			assert.NotNil(t, s.Courses)
			assert.Empty(t, s.Courses)
			assert.NotNil(t, s.BreadthReqs)
			assert.Empty(t, s.BreadthReqs)
			assert.Empty(t, s.DistributionReqs)
			assert.Empty(t, s.BreadthReqMap)

			var fetchErr *FetchError
			require.ErrorAs(t, s.CoursesError, &fetchErr)
			assert.Equal(t, "database is locked", fetchErr.Body)
			assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
			assert.Equal(t, srv.URL+"/api/courses", fetchErr.URL)

			if offeringsStatus == http.StatusOK {
				assert.Equal(t, Loaded, s.OfferingsStatus())
				assert.Len(t, s.Offerings, 1)
			} else {
				assert.Equal(t, Failed, s.OfferingsStatus())
				assert.Empty(t, s.Offerings)
			}
		})
	}
}

func TestOfferingsFailureKeepsCourses(t *testing.T) {
	b, _ := newTestBrowser(t, writeBody(http.StatusOK, coursesJSON), writeBody(http.StatusBadGateway, "upstream down"))

	b.Load(context.Background())
	s := b.Snapshot()

	assert.Equal(t, Loaded, s.CoursesStatus())
	assert.NotEmpty(t, s.BreadthReqs)

	assert.False(t, s.OfferingsLoaded)
	assert.Empty(t, s.Offerings)
	var fetchErr *FetchError
	require.ErrorAs(t, s.OfferingsError, &fetchErr)
	assert.Equal(t, "upstream down", fetchErr.Body)
}

func TestLoadFetchesConcurrently(t *testing.T) {
	offeringsServed := make(chan struct{})

	courses := func(w http.ResponseWriter, r *http.Request) {
		// Only answers once the offerings request has been served, which
		// cannot happen if the fetches run one after the other.
		select {
		case <-offeringsServed:
		case <-time.After(3 * time.Second):
			t.Error("offerings were not requested while courses were in flight")
		}
		writeBody(http.StatusOK, coursesJSON)(w, r)
	}
	offerings := func(w http.ResponseWriter, r *http.Request) {
		writeBody(http.StatusOK, offeringsJSON)(w, r)
		close(offeringsServed)
	}

	b, _ := newTestBrowser(t, courses, offerings)
	b.Load(context.Background())

	s := b.Snapshot()
	assert.Equal(t, Loaded, s.CoursesStatus())
	assert.Equal(t, Loaded, s.OfferingsStatus())
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	b := New(NewClient(url, time.Second, zerolog.Nop()), zerolog.Nop())
	b.Load(context.Background())
	s := b.Snapshot()

	assert.Equal(t, Failed, s.CoursesStatus())
	assert.Equal(t, Failed, s.OfferingsStatus())
	var fetchErr *FetchError
	assert.False(t, errors.As(s.CoursesError, &fetchErr))
}

func TestMalformedJSONFails(t *testing.T) {
	b, _ := newTestBrowser(t, writeBody(http.StatusOK, `{"not": "an array"}`), writeBody(http.StatusOK, `[]`))

	b.Load(context.Background())
	s := b.Snapshot()

	assert.Equal(t, Failed, s.CoursesStatus())
	assert.Error(t, s.CoursesError)
	assert.Equal(t, Loaded, s.OfferingsStatus())
	assert.NotNil(t, s.Offerings)
	assert.Empty(t, s.Offerings)
}

func TestReloadAfterFailure(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	courses := func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			writeBody(http.StatusInternalServerError, "boom")(w, r)
			return
		}
		writeBody(http.StatusOK, coursesJSON)(w, r)
	}
	b, _ := newTestBrowser(t, courses, writeBody(http.StatusOK, offeringsJSON))

	b.LoadCourses(context.Background())
	require.Equal(t, Failed, b.Snapshot().CoursesStatus())

	fail.Store(false)
	b.LoadCourses(context.Background())
	s := b.Snapshot()
	assert.Equal(t, Loaded, s.CoursesStatus())
	assert.NoError(t, s.CoursesError)
	assert.Len(t, s.Courses, 4)
}

func TestSelectTab(t *testing.T) {
	b := New(NewClient("http://127.0.0.1:0", time.Second, zerolog.Nop()), zerolog.Nop())

	require.NoError(t, b.SelectTab(requirement.KindDistribution))
	assert.Equal(t, requirement.KindDistribution, b.Snapshot().ShowTab)

	assert.Error(t, b.SelectTab("calendar"))
	assert.Equal(t, requirement.KindDistribution, b.Snapshot().ShowTab)
}

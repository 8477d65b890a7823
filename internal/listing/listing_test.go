package listing

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellandashawn/fignite/internal/domain"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func activity(name string, opts ...func(*domain.Activity)) domain.Activity {
	a := domain.Activity{Name: name, Date: now.AddDate(0, 0, 7)}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

func onDate(d time.Time) func(*domain.Activity) {
	return func(a *domain.Activity) { a.Date = d }
}

func all() Params {
	return Params{Category: FilterAll, Status: FilterAll, Page: 1, PerPage: DefaultPerPage}
}

func TestQuery_Search(t *testing.T) {
	records := []domain.Activity{
		{Name: "5k Run", Venue: "Park", Date: now.AddDate(0, 0, 1)},
		{Name: "10k Run", Venue: "Stadium", Date: now.AddDate(0, 0, 1)},
	}

	p := all()
	p.Search = "5k"
	res := Query(records, p, nil, now)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "5k Run", res.Items[0].Name)

	// Venue and description are searched too.
	p.Search = "stadium"
	res = Query(records, p, nil, now)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "10k Run", res.Items[0].Name)
}

func TestQuery_CategoryFilter(t *testing.T) {
	categories := []domain.Category{
		{ID: "c1", Name: "Marathon"},
		{ID: "c2", Name: "Music"},
	}
	records := []domain.Activity{
		activity("City Run", func(a *domain.Activity) { a.Category = domain.CategoryRaw("c1") }),
		activity("Jazz Night", func(a *domain.Activity) { a.Category = domain.CategoryByName("Music") }),
	}

	p := all()
	p.Category = "marathon" // compared case-insensitively against resolved names
	res := Query(records, p, categories, now)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "City Run", res.Items[0].Name)

	p.Category = FilterAll
	res = Query(records, p, categories, now)
	assert.Len(t, res.Items, 2)
}

func TestQuery_StatusFilter(t *testing.T) {
	records := []domain.Activity{
		activity("Past", onDate(now.AddDate(0, 0, -2))),
		activity("Today", onDate(now)),
		activity("Future", onDate(now.AddDate(0, 0, 2))),
		activity("Called off", func(a *domain.Activity) { a.ManualStatus = domain.StatusCancelled }),
	}

	p := all()
	p.Status = "completed"
	res := Query(records, p, nil, now)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Past", res.Items[0].Name)

	p.Status = "cancelled"
	res = Query(records, p, nil, now)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Called off", res.Items[0].Name)

	// Both sentinels bypass the check.
	p.Status = FilterAllStatus
	res = Query(records, p, nil, now)
	assert.Len(t, res.Items, 4)
}

func TestQuery_FiltersCombineWithAND(t *testing.T) {
	records := []domain.Activity{
		activity("Morning Run", onDate(now.AddDate(0, 0, 2))),
		activity("Morning Yoga", onDate(now.AddDate(0, 0, -2))),
	}

	p := all()
	p.Search = "morning"
	p.Status = "upcoming"
	res := Query(records, p, nil, now)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Morning Run", res.Items[0].Name)
}

func TestQuery_DropsBlankNames(t *testing.T) {
	records := []domain.Activity{
		activity("Valid"),
		{Name: "   ", Date: now},
		{},
	}

	res := Query(records, all(), nil, now)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Valid", res.Items[0].Name)
}

func TestQuery_SortUpcoming(t *testing.T) {
	past := activity("Past", onDate(now.AddDate(0, 0, -5)))
	futureA := activity("Future A", onDate(now.AddDate(0, 0, 3)))
	futureB := activity("Future B", onDate(now.AddDate(0, 0, 9)))

	p := all()
	p.Sort = SortUpcoming
	res := Query([]domain.Activity{past, futureB, futureA}, p, nil, now)

	require.Len(t, res.Items, 3)
	assert.Equal(t, "Future A", res.Items[0].Name)
	assert.Equal(t, "Future B", res.Items[1].Name)
	assert.Equal(t, "Past", res.Items[2].Name)
}

func TestQuery_SortUpcoming_PastSortsMostRecentFirst(t *testing.T) {
	lastWeek := activity("Last week", onDate(now.AddDate(0, 0, -7)))
	yesterday := activity("Yesterday", onDate(now.AddDate(0, 0, -1)))

	p := all()
	p.Sort = SortUpcoming
	res := Query([]domain.Activity{lastWeek, yesterday}, p, nil, now)

	require.Len(t, res.Items, 2)
	assert.Equal(t, "Yesterday", res.Items[0].Name)
	assert.Equal(t, "Last week", res.Items[1].Name)
}

func TestQuery_SortNewest(t *testing.T) {
	older := activity("Older", func(a *domain.Activity) { a.CreatedAt = now.AddDate(0, -1, 0) })
	newer := activity("Newer", func(a *domain.Activity) { a.CreatedAt = now })
	missing := activity("Missing timestamp") // zero CreatedAt sorts as epoch

	p := all()
	p.Sort = SortNewest
	res := Query([]domain.Activity{missing, older, newer}, p, nil, now)

	require.Len(t, res.Items, 3)
	assert.Equal(t, "Newer", res.Items[0].Name)
	assert.Equal(t, "Older", res.Items[1].Name)
	assert.Equal(t, "Missing timestamp", res.Items[2].Name)
}

func TestQuery_SortMostRegistered(t *testing.T) {
	quiet := activity("Quiet", func(a *domain.Activity) {
		a.Participation.ConfirmedParticipants = 2
	})
	popular := activity("Popular", func(a *domain.Activity) {
		a.Participation.ConfirmedParticipants = 40
	})
	none := activity("None")

	p := all()
	p.Sort = SortMostRegistered
	res := Query([]domain.Activity{none, quiet, popular}, p, nil, now)

	require.Len(t, res.Items, 3)
	assert.Equal(t, "Popular", res.Items[0].Name)
	assert.Equal(t, "Quiet", res.Items[1].Name)
	assert.Equal(t, "None", res.Items[2].Name)
}

func TestQuery_SortIsStable(t *testing.T) {
	sameDay := now.AddDate(0, 0, 4)
	records := []domain.Activity{
		activity("First", onDate(sameDay)),
		activity("Second", onDate(sameDay)),
		activity("Third", onDate(sameDay)),
	}

	p := all()
	p.Sort = SortUpcoming
	res := Query(records, p, nil, now)

	require.Len(t, res.Items, 3)
	assert.Equal(t, "First", res.Items[0].Name)
	assert.Equal(t, "Second", res.Items[1].Name)
	assert.Equal(t, "Third", res.Items[2].Name)
}

func TestQuery_Pagination(t *testing.T) {
	var records []domain.Activity
	for i := 0; i < 12; i++ {
		records = append(records, activity(string(rune('A'+i))))
	}

	p := all()
	p.PerPage = 5
	p.Page = 1
	res := Query(records, p, nil, now)

	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 12, res.Total)
	assert.Len(t, res.Items, 5)

	p.Page = 3
	res = Query(records, p, nil, now)
	assert.Len(t, res.Items, 2)

	// Out-of-range requests clamp to the last valid page.
	p.Page = 4
	res = Query(records, p, nil, now)
	assert.Equal(t, 3, res.Page)
	assert.Len(t, res.Items, 2)

	p.Page = -1
	res = Query(records, p, nil, now)
	assert.Equal(t, 1, res.Page)
	assert.Len(t, res.Items, 5)
}

func TestQuery_EmptyInput(t *testing.T) {
	res := Query(nil, all(), nil, now)

	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.Page)
}

func TestParseParams(t *testing.T) {
	q := url.Values{
		"q":        {"run"},
		"category": {"Marathon"},
		"status":   {"upcoming"},
		"sort":     {SortNewest},
		"page":     {"2"},
		"per_page": {"5"},
	}

	p := ParseParams(q)

	assert.Equal(t, "run", p.Search)
	assert.Equal(t, "Marathon", p.Category)
	assert.Equal(t, "upcoming", p.Status)
	assert.Equal(t, SortNewest, p.Sort)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.PerPage)
}

func TestParseParams_Defaults(t *testing.T) {
	p := ParseParams(url.Values{})

	assert.Equal(t, FilterAll, p.Category)
	assert.Equal(t, FilterAll, p.Status)
	assert.Equal(t, SortUpcoming, p.Sort)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestParseParams_InvalidValues(t *testing.T) {
	q := url.Values{
		"sort":     {"bogus"},
		"page":     {"-3"},
		"per_page": {"0"},
	}

	p := ParseParams(q)

	assert.Equal(t, SortUpcoming, p.Sort)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

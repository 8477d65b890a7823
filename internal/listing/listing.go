// Package listing implements the shared filter/sort/paginate pipeline
// behind every activity listing, activity-type-agnostic and free of any
// HTTP or storage dependency.
package listing

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sellandashawn/fignite/internal/domain"
)

const (
	SortUpcoming       = "upcoming"
	SortNewest         = "newest"
	SortMostRegistered = "mostRegistered"
)

// FilterAll is the sentinel that bypasses the category filter. The
// status filter additionally accepts the admin console's "All Status".
const (
	FilterAll       = "all"
	FilterAllStatus = "All Status"
)

// DefaultPerPage is the default page size.
const DefaultPerPage = 9

type Params struct {
	Search   string
	Category string
	Status   string
	Sort     string
	Page     int // 1-indexed
	PerPage  int
}

type Result struct {
	Items      []domain.Activity
	Page       int
	PerPage    int
	Total      int
	TotalPages int
}

// ParseParams extracts listing parameters from URL query values,
// applying defaults and clamping obviously invalid values.
func ParseParams(q url.Values) Params {
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	sortKey := q.Get("sort")
	switch sortKey {
	case SortUpcoming, SortNewest, SortMostRegistered:
	default:
		sortKey = SortUpcoming
	}

	category := q.Get("category")
	if category == "" {
		category = FilterAll
	}

	status := q.Get("status")
	if status == "" {
		status = FilterAll
	}

	return Params{
		Search:   q.Get("q"),
		Category: category,
		Status:   status,
		Sort:     sortKey,
		Page:     page,
		PerPage:  perPage,
	}
}

// Query runs the full pipeline over records: drop malformed records,
// resolve each record's status, apply the AND-combined filters, sort
// with a stable order, and slice out the requested page. Out-of-range
// pages are clamped, never an error.
func Query(records []domain.Activity, p Params, categories []domain.Category, now time.Time) Result {
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}

	filtered := make([]domain.Activity, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			continue
		}
		if !matches(rec, p, categories, now) {
			continue
		}
		filtered = append(filtered, rec)
	}

	sortActivities(filtered, p.Sort, now)

	total := len(filtered)
	totalPages := (total + p.PerPage - 1) / p.PerPage
	if totalPages < 1 {
		totalPages = 1
	}

	page := p.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * p.PerPage
	end := start + p.PerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		Page:       page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

func matches(rec domain.Activity, p Params, categories []domain.Category, now time.Time) bool {
	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		if !strings.Contains(strings.ToLower(rec.Name), needle) &&
			!strings.Contains(strings.ToLower(rec.Description), needle) &&
			!strings.Contains(strings.ToLower(rec.Venue), needle) {
			return false
		}
	}

	if !strings.EqualFold(p.Category, FilterAll) {
		name := domain.ResolveCategoryName(rec.Category, categories)
		if !strings.EqualFold(name, p.Category) {
			return false
		}
	}

	if !strings.EqualFold(p.Status, FilterAll) && p.Status != FilterAllStatus {
		status := rec.DerivedStatus(now)
		if !strings.EqualFold(string(status), p.Status) {
			return false
		}
	}

	return true
}

func sortActivities(items []domain.Activity, key string, now time.Time) {
	switch key {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})

	case SortMostRegistered:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Participation.ConfirmedParticipants > items[j].Participation.ConfirmedParticipants
		})

	default: // SortUpcoming
		sort.SliceStable(items, func(i, j int) bool {
			ti := domain.TargetTime(items[i].Date, items[i].Time)
			tj := domain.TargetTime(items[j].Date, items[j].Time)

			futureI := !ti.IsZero() && !ti.Before(now)
			futureJ := !tj.IsZero() && !tj.Before(now)

			if futureI && futureJ {
				// Soonest upcoming first.
				return ti.Before(tj)
			}
			if futureI != futureJ {
				return futureI
			}

			// Both past or unscheduled: most recent first.
			return ti.After(tj)
		})
	}
}

package listing

import (
	"reflect"
	"testing"
	"time"
)

type row struct {
	ID     int
	Name   string
	Group  string
	Seats  int
	Pickup time.Time
}

var base = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func sampleRows(n int) []row {
	groups := []string{"airport", "hotel", "event"}
	rows := make([]row, n)
	for i := range rows {
		// Pickup runs backwards in time so sorting has work to do.
		rows[i] = row{
			ID:     i,
			Name:   []string{"Ana", "bob", "Cem", "dina"}[i%4],
			Group:  groups[i%3],
			Seats:  1 + i%5,
			Pickup: base.Add(time.Duration(n-i) * time.Hour),
		}
	}
	return rows
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func byPickup(a, b row) int { return CompareTime(a.Pickup, b.Pickup) }

func bySeats(a, b row) int { return CompareOrdered(a.Seats, b.Seats) }

func nameField(r row) []string { return []string{r.Name} }

func TestApply_TwentyFiveByPickupInPagesOfTen(t *testing.T) {
	rows := sampleRows(25)

	first := Apply(rows, Query[row]{Compare: byPickup, Page: 1, PerPage: 10})
	if first.TotalPages != 3 || first.Total != 25 {
		t.Fatalf("expected 25 items over 3 pages, got %d over %d", first.Total, first.TotalPages)
	}
	if len(first.Items) != 10 {
		t.Fatalf("page 1 has %d items", len(first.Items))
	}
	// Earliest pickup belongs to the highest ID.
	if first.Items[0].ID != 24 || first.Items[9].ID != 15 {
		t.Fatalf("page 1 is not the 10 earliest: %v", ids(first.Items))
	}

	last := Apply(rows, Query[row]{Compare: byPickup, Page: 3, PerPage: 10})
	if got := ids(last.Items); !reflect.DeepEqual(got, []int{4, 3, 2, 1, 0}) {
		t.Fatalf("page 3 should hold the 5 latest, got %v", got)
	}
}

func TestApply_Idempotent(t *testing.T) {
	rows := sampleRows(40)
	q := Query[row]{
		Search:       "a",
		SearchFields: nameField,
		Filters:      []func(row) bool{Equals(func(r row) string { return r.Group }, "hotel")},
		Compare:      bySeats,
		Desc:         true,
		Page:         2,
		PerPage:      3,
	}

	if a, b := Apply(rows, q), Apply(rows, q); !reflect.DeepEqual(a, b) {
		t.Fatalf("same query gave different pages:\n%v\n%v", a, b)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rows := sampleRows(12)
	before := ids(rows)

	Apply(rows, Query[row]{Compare: byPickup, Page: 1, PerPage: 5})

	if !reflect.DeepEqual(ids(rows), before) {
		t.Fatalf("input reordered: %v", ids(rows))
	}
}

func TestFilter_IsSubset(t *testing.T) {
	rows := sampleRows(30)
	lo, hi := 2, 3

	got := Filter(rows, "D", nameField,
		IntRange(func(r row) int { return r.Seats }, &lo, &hi),
	)

	seen := map[int]bool{}
	for _, r := range rows {
		seen[r.ID] = true
	}
	for _, r := range got {
		if !seen[r.ID] {
			t.Fatalf("filtered row %d not in input", r.ID)
		}
		if r.Seats < lo || r.Seats > hi || !ContainsFold(r.Name, "d") {
			t.Fatalf("row %+v should have been filtered out", r)
		}
	}
	if len(got) == 0 {
		t.Fatalf("expected some matches")
	}
}

func TestFilter_BlankSearchAndNilPredicatesKeepEverything(t *testing.T) {
	rows := sampleRows(7)

	got := Filter(rows, "   ", nameField, nil, Equals(func(r row) string { return r.Group }, "all"))
	if !reflect.DeepEqual(ids(got), ids(rows)) {
		t.Fatalf("expected all rows, got %v", ids(got))
	}
}

func TestSortStable_KeepsTiesInOrderBothDirections(t *testing.T) {
	rows := sampleRows(20)

	for _, desc := range []bool{false, true} {
		sorted := Filter(rows, "", nil)
		SortStable(sorted, bySeats, desc)

		lastID := map[int]int{}
		for _, r := range sorted {
			if prev, ok := lastID[r.Seats]; ok && prev > r.ID {
				t.Fatalf("desc=%v: tie order broken for seats=%d (%d before %d)", desc, r.Seats, prev, r.ID)
			}
			lastID[r.Seats] = r.ID
		}

		for i := 1; i < len(sorted); i++ {
			c := bySeats(sorted[i-1], sorted[i])
			if (!desc && c > 0) || (desc && c < 0) {
				t.Fatalf("desc=%v: not sorted at %d", desc, i)
			}
		}
	}
}

func TestPaginate_CoversEveryItemOnce(t *testing.T) {
	rows := sampleRows(23)
	sorted := Filter(rows, "", nil)
	SortStable(sorted, byPickup, false)

	for _, perPage := range []int{1, 4, 10, 23, 50} {
		var all []int
		total := TotalPages(len(sorted), perPage)
		for page := 1; page <= total; page++ {
			all = append(all, ids(Paginate(sorted, page, perPage).Items)...)
		}
		if !reflect.DeepEqual(all, ids(sorted)) {
			t.Fatalf("perPage=%d: pages do not reproduce the sorted set", perPage)
		}
	}
}

func TestPaginate_OutOfRangeAndClamping(t *testing.T) {
	rows := sampleRows(5)

	past := Paginate(rows, 9, 2)
	if len(past.Items) != 0 || past.Items == nil {
		t.Fatalf("expected empty non-nil items past the end, got %v", past.Items)
	}
	if past.Total != 5 || past.TotalPages != 3 {
		t.Fatalf("totals wrong past the end: %+v", past)
	}

	clamped := Paginate(rows, 0, 0)
	if clamped.Page != 1 || clamped.PerPage != DefaultPerPage {
		t.Fatalf("expected page 1 and default size, got %d/%d", clamped.Page, clamped.PerPage)
	}

	if p := Paginate(rows, 1, 1000); p.PerPage != MaxPerPage {
		t.Fatalf("perPage not capped: %d", p.PerPage)
	}

	empty := Paginate([]row{}, 1, 10)
	if empty.TotalPages != 0 || len(empty.Items) != 0 {
		t.Fatalf("empty input: %+v", empty)
	}
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	got := Paginate([]int{1, 2, 3}, 1<<62, 4)
	if len(got.Items) != 0 || got.Total != 3 || got.TotalPages != 1 || got.Page != 1<<62 {
		t.Fatalf("unexpected page %+v", got)
	}
}

func TestDateRange_InclusiveEndOfDay(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	pred := DateRange(func(r row) time.Time { return r.Pickup }, &day, &day)

	inside := row{Pickup: time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)}
	before := row{Pickup: time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)}
	after := row{Pickup: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)}

	if !pred(inside) || pred(before) || pred(after) {
		t.Fatalf("date range bounds wrong")
	}

	if DateRange(func(r row) time.Time { return r.Pickup }, nil, nil) != nil {
		t.Fatalf("expected nil predicate without bounds")
	}
}

func TestCompareOptionalTime_NilFirst(t *testing.T) {
	now := time.Now()
	if CompareOptionalTime(nil, &now) >= 0 || CompareOptionalTime(&now, nil) <= 0 || CompareOptionalTime(nil, nil) != 0 {
		t.Fatalf("nil should order before any time")
	}
}

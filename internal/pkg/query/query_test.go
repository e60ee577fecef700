package query

import (
	"net/url"
	"reflect"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	q := Parse(url.Values{})

	if q.Page != 1 || q.Limit != 25 {
		t.Fatalf("expected defaults page=1 limit=25, got page=%d limit=%d", q.Page, q.Limit)
	}
	if !reflect.DeepEqual(q.Sort, []string{"-createdAt"}) {
		t.Fatalf("expected default sort -createdAt, got %v", q.Sort)
	}
	if len(q.Filter) != 0 {
		t.Fatalf("expected empty filter, got %v", q.Filter)
	}
	if q.Select != nil {
		t.Fatalf("expected no projection, got %v", q.Select)
	}
}

func TestParse_NonNumericPageFallsBack(t *testing.T) {
	q := Parse(url.Values{"page": {"abc"}, "limit": {"-3"}})
	if q.Page != 1 || q.Limit != 25 {
		t.Fatalf("expected defaults, got page=%d limit=%d", q.Page, q.Limit)
	}
}

func TestParse_ReservedParamsAreNotFilters(t *testing.T) {
	q := Parse(url.Values{
		"select": {"name,description"},
		"sort":   {"name,-tuition"},
		"page":   {"2"},
		"limit":  {"10"},
		"city":   {"Boston"},
	})

	if !reflect.DeepEqual(q.Select, []string{"name", "description"}) {
		t.Fatalf("unexpected select: %v", q.Select)
	}
	if !reflect.DeepEqual(q.Sort, []string{"name", "-tuition"}) {
		t.Fatalf("unexpected sort: %v", q.Sort)
	}
	if q.Page != 2 || q.Limit != 10 {
		t.Fatalf("unexpected pagination: page=%d limit=%d", q.Page, q.Limit)
	}
	if len(q.Filter) != 1 || q.Filter["city"] != "Boston" {
		t.Fatalf("unexpected filter: %v", q.Filter)
	}
}

func TestParse_TranslatesEveryOperator(t *testing.T) {
	q := Parse(url.Values{
		"tuition_gte": {"1000"},
		"tuition_lte": {"5000"},
		"weeks_gt":    {"4"},
		"rating_lt":   {"9"},
		"careers_in":  {"Web Development,Data Science"},
		"housing":     {"true"},
		"averageCost": {"12000"},
		"career_path": {"ux"}, // "path" is not an operator token
	})

	tuition, ok := q.Filter["tuition"].(map[string]any)
	if !ok {
		t.Fatalf("expected operator map for tuition, got %T", q.Filter["tuition"])
	}
	if tuition["gte"] != int64(1000) || tuition["lte"] != int64(5000) {
		t.Fatalf("both tuition operators must be translated, got %v", tuition)
	}

	if weeks := q.Filter["weeks"].(map[string]any); weeks["gt"] != int64(4) {
		t.Fatalf("unexpected weeks filter: %v", weeks)
	}
	if rating := q.Filter["rating"].(map[string]any); rating["lt"] != int64(9) {
		t.Fatalf("unexpected rating filter: %v", rating)
	}

	careers := q.Filter["careers"].(map[string]any)
	set, ok := careers["in"].([]any)
	if !ok || len(set) != 2 || set[0] != "Web Development" || set[1] != "Data Science" {
		t.Fatalf("unexpected in set: %v", careers["in"])
	}

	if q.Filter["housing"] != true {
		t.Fatalf("expected bool parse, got %v (%T)", q.Filter["housing"], q.Filter["housing"])
	}
	if q.Filter["averageCost"] != int64(12000) {
		t.Fatalf("expected numeric parse, got %v (%T)", q.Filter["averageCost"], q.Filter["averageCost"])
	}
	if q.Filter["career_path"] != "ux" {
		t.Fatalf("non-operator suffix must stay an equality filter, got %v", q.Filter["career_path"])
	}
}

func TestPaginate_NextAndPrev(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		limit    int
		total    int64
		wantNext *PageRef
		wantPrev *PageRef
	}{
		{"first page of many", 1, 25, 100, &PageRef{2, 25}, nil},
		{"middle page", 2, 25, 100, &PageRef{3, 25}, &PageRef{1, 25}},
		{"last page", 4, 25, 100, nil, &PageRef{3, 25}},
		{"single page", 1, 25, 10, nil, nil},
		{"exact boundary", 2, 25, 50, nil, &PageRef{1, 25}},
		{"five records page two of two", 2, 2, 5, &PageRef{3, 2}, &PageRef{1, 2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Paginate(Query{Page: tc.page, Limit: tc.limit}, tc.total)
			if !reflect.DeepEqual(p.Next, tc.wantNext) {
				t.Fatalf("next: got %+v want %+v", p.Next, tc.wantNext)
			}
			if !reflect.DeepEqual(p.Prev, tc.wantPrev) {
				t.Fatalf("prev: got %+v want %+v", p.Prev, tc.wantPrev)
			}
		})
	}
}

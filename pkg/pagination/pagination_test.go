package pagination

import "testing"

func TestNormalize_FillsDefaults(t *testing.T) {
	d := Defaults{PageSize: 20, SortBy: "created_at", SortDir: "desc"}

	got := Request{}.Normalize(d)
	if got.PageNo != 0 || got.PageSize != 20 || got.SortBy != "created_at" || got.SortDir != "desc" {
		t.Fatalf("unexpected normalized request: %+v", got)
	}

	// explicit values survive normalization
	got = Request{PageNo: 3, PageSize: 5, SortBy: "status", SortDir: "asc"}.Normalize(d)
	if got.PageNo != 3 || got.PageSize != 5 || got.SortBy != "status" || got.SortDir != "asc" {
		t.Fatalf("explicit values overwritten: %+v", got)
	}
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"negative pageNo", Request{PageNo: -1, PageSize: 10, SortDir: "asc"}, "pageNo"},
		{"pageSize zero", Request{PageSize: 0, SortDir: "asc"}, "pageSize"},
		{"pageSize over max", Request{PageSize: 101, SortDir: "asc"}, "pageSize"},
		{"bad sortDir", Request{PageSize: 10, SortDir: "sideways"}, "sortDir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := tt.req.Validate()
			if verr == nil {
				t.Fatalf("expected validation error")
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Fatalf("expected field %q in %+v", tt.wantField, verr.Fields)
			}
		})
	}

	if verr := (Request{PageNo: 0, PageSize: 1, SortDir: "asc"}).Validate(); verr != nil {
		t.Fatalf("min bounds should be valid: %+v", verr.Fields)
	}
	if verr := (Request{PageNo: 0, PageSize: 100, SortDir: "desc"}).Validate(); verr != nil {
		t.Fatalf("max bounds should be valid: %+v", verr.Fields)
	}
}

func TestValidate_SortableWhitelist(t *testing.T) {
	req := Request{PageSize: 10, SortBy: "password", SortDir: "asc"}
	verr := req.Validate("created_at", "status")
	if verr == nil || verr.Fields["sortBy"] == "" {
		t.Fatalf("expected sortBy rejection, got %+v", verr)
	}

	req.SortBy = "status"
	if verr := req.Validate("created_at", "status"); verr != nil {
		t.Fatalf("whitelisted sortBy rejected: %+v", verr.Fields)
	}
}

func TestNewResponse_EnvelopeInvariants(t *testing.T) {
	tests := []struct {
		name      string
		pageNo    int
		pageSize  int
		total     int64
		content   int
		wantPages int
		wantLast  bool
	}{
		{"exact fit", 0, 10, 10, 10, 1, true},
		{"middle page", 1, 10, 35, 10, 4, false},
		{"last partial page", 3, 10, 35, 5, 4, true},
		{"page past the end", 5, 10, 35, 0, 4, false},
		{"empty result", 0, 10, 0, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := make([]int, tt.content)
			resp := NewResponse(content, Request{PageNo: tt.pageNo, PageSize: tt.pageSize}, tt.total)

			if len(resp.Content) > resp.PageSize {
				t.Fatalf("content %d exceeds pageSize %d", len(resp.Content), resp.PageSize)
			}
			if resp.TotalPages != tt.wantPages {
				t.Fatalf("totalPages = %d, want %d", resp.TotalPages, tt.wantPages)
			}
			if resp.Last != tt.wantLast {
				t.Fatalf("last = %v, want %v", resp.Last, tt.wantLast)
			}
			if resp.TotalElements != tt.total {
				t.Fatalf("totalElements = %d, want %d", resp.TotalElements, tt.total)
			}
		})
	}
}

func TestNewResponse_NilContentBecomesEmptySlice(t *testing.T) {
	resp := NewResponse[int](nil, Request{PageNo: 0, PageSize: 10}, 0)
	if resp.Content == nil {
		t.Fatal("content should serialize as [], not null")
	}
}

func TestNewResponse_CeilProperty(t *testing.T) {
	// totalPages == ceil(totalElements / pageSize) across a sweep of inputs
	for pageSize := 1; pageSize <= 25; pageSize++ {
		for total := int64(0); total <= 120; total += 7 {
			resp := NewResponse([]int{}, Request{PageSize: pageSize}, total)
			want := int((total + int64(pageSize) - 1) / int64(pageSize))
			if resp.TotalPages != want {
				t.Fatalf("pageSize=%d total=%d: totalPages=%d want %d", pageSize, total, resp.TotalPages, want)
			}
		}
	}
}

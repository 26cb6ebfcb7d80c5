package utils

import "testing"

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(25, 2, 10)
	if p.TotalPages != 3 || p.CurrentPage != 2 || p.PageSize != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	// Defaults kick in for out-of-range arguments.
	p = CreatePagination(5, 0, 0)
	if p.CurrentPage != 1 || p.PageSize != 10 || p.TotalPages != 1 {
		t.Fatalf("unexpected defaulted pagination: %+v", p)
	}
}

func TestPageBounds(t *testing.T) {
	cases := []struct {
		total, page, size int
		start, end        int
	}{
		{25, 1, 10, 0, 10},
		{25, 3, 10, 20, 25},
		{25, 4, 10, 25, 25},
		{0, 1, 10, 0, 0},
		{5, 0, 0, 0, 5},
	}

	for _, c := range cases {
		start, end := PageBounds(c.total, c.page, c.size)
		if start != c.start || end != c.end {
			t.Fatalf("PageBounds(%d, %d, %d) = (%d, %d); want (%d, %d)",
				c.total, c.page, c.size, start, end, c.start, c.end)
		}
	}
}

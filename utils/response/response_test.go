package response

import "testing"

func TestCalculatePagination(t *testing.T) {
	meta := CalculatePagination(2, 10, 25)

	if meta.CurrentPage != 2 {
		t.Errorf("CurrentPage: got %d, want 2", meta.CurrentPage)
	}
	if meta.PerPage != 10 {
		t.Errorf("PerPage: got %d, want 10", meta.PerPage)
	}
	if meta.Total != 25 {
		t.Errorf("Total: got %d, want 25", meta.Total)
	}
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages: got %d, want 3", meta.TotalPages)
	}
}

func TestCalculatePaginationExactFit(t *testing.T) {
	meta := CalculatePagination(1, 10, 30)
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages: got %d, want 3", meta.TotalPages)
	}
}

func TestCalculatePaginationEmpty(t *testing.T) {
	meta := CalculatePagination(1, 10, 0)
	if meta.TotalPages != 0 {
		t.Errorf("TotalPages: got %d, want 0", meta.TotalPages)
	}
}

func TestCalculatePaginationClampsInput(t *testing.T) {
	meta := CalculatePagination(0, 0, 5)
	if meta.CurrentPage != 1 {
		t.Errorf("CurrentPage: got %d, want 1", meta.CurrentPage)
	}
	if meta.PerPage != 10 {
		t.Errorf("PerPage: got %d, want 10", meta.PerPage)
	}

	meta = CalculatePagination(1, 1000, 5)
	if meta.PerPage != 100 {
		t.Errorf("PerPage: got %d, want 100", meta.PerPage)
	}
}

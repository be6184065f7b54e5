package mdbox

import "testing"

func TestCellAddSaturates(t *testing.T) {
	if got := Cell(3).add(4); got != 7 {
		t.Fatalf("add: got %d want 7", got)
	}
	if got := MaxCell.add(1); got != MaxCell {
		t.Fatalf("add overflow: got %d want %d", got, MaxCell)
	}
	if got := (MaxCell - 1).add(5); got != MaxCell {
		t.Fatalf("add near overflow: got %d want %d", got, MaxCell)
	}
}

func TestCellSubSaturates(t *testing.T) {
	if got := Cell(7).sub(4); got != 3 {
		t.Fatalf("sub: got %d want 3", got)
	}
	if got := Cell(2).sub(5); got != 0 {
		t.Fatalf("sub underflow: got %d want 0", got)
	}
	if got := Cell(0).sub(1); got != 0 {
		t.Fatalf("sub at zero: got %d want 0", got)
	}
}

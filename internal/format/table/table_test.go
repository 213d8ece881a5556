package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	got := Format([][]string{
		{"a", "1", "x"},
		{"bbb", "22", "y"},
	}, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"a     1  x",
		"bbb  22  y",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresCellWidth(t *testing.T) {
	got := Format([][]string{
		{"日本", "wide"},
		{"ab", "narrow"},
	}, nil)
	if got[1] != "ab    narrow" {
		t.Fatalf("expected wide runes to count as two cells, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %#v", got)
	}
}

func TestKeyValue(t *testing.T) {
	got := KeyValue([][2]string{{"ID", "$1"}, {"Windows", "3"}})
	want := []string{"ID:       $1", "Windows:  3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

package collection

import (
	"math"
	"testing"

	"github.com/chesskit-go/chesskit/internal/pgn"
	"github.com/chesskit-go/chesskit/internal/testutil"
)

func game(t *testing.T, movetext string) *pgn.Game {
	t.Helper()
	return testutil.MustParseGame(t, movetext)
}

func TestAddDetectsDuplicates(t *testing.T) {
	c := New()

	first, dup := c.Add(game(t, "1. e4 e5 2. Nf3 Nc6 1-0"))
	if dup {
		t.Fatal("first game reported as duplicate")
	}

	// Same moves with different decorations still collide.
	record, dup := c.Add(game(t, "1. e4 e5 2. Nf3! {book} Nc6 1-0"))
	if !dup {
		t.Fatal("annotated copy not reported as duplicate")
	}
	if record.ID != first.ID {
		t.Errorf("duplicate resolved to record %v, want %v", record.ID, first.ID)
	}

	if _, dup := c.Add(game(t, "1. e4 e5 2. Nf3 Nf6 0-1")); dup {
		t.Error("distinct game reported as duplicate")
	}

	testutil.AssertEqual(t, c.Len(), 2)
	testutil.AssertEqual(t, c.DuplicateCount(), 1)
}

func TestSignatureNormalization(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"check suffixes", "1. e4 e5 2. Qh5 Nc6 3. Qxf7# 1-0", "1. e4 e5 2. Qh5 Nc6 3. Qxf7 1-0"},
		{"castling spellings", "1. e4 e5 2. Nf3 Nf6 3. O-O *", "1. e4 e5 2. Nf3 Nf6 3. 0-0 *"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Signature(game(t, tt.a))
			b := Signature(game(t, tt.b))
			if a != b {
				t.Errorf("signatures differ: %#x vs %#x", a, b)
			}
		})
	}

	a := Signature(game(t, "1. e4 e5 *"))
	b := Signature(game(t, "1. e4 c5 *"))
	if a == b {
		t.Errorf("different games share signature %#x", a)
	}
}

func TestRecordsPreserveAdmissionOrder(t *testing.T) {
	c := New()
	movetexts := []string{
		"1. e4 e5 *",
		"1. d4 d5 *",
		"1. c4 c5 *",
	}
	for _, mt := range movetexts {
		c.Add(game(t, mt))
	}

	records := c.Records()
	if len(records) != len(movetexts) {
		t.Fatalf("records = %d, want %d", len(records), len(movetexts))
	}
	for i, record := range records {
		if got := record.Game.Moves[0].Text; got != game(t, movetexts[i]).Moves[0].Text {
			t.Errorf("record %d: first move = %q", i, got)
		}
	}
}

func TestSummarize(t *testing.T) {
	c := New()
	c.Add(game(t, "1. e4 e5 1-0"))                // 2 plies
	c.Add(game(t, "1. d4 d5 2. c4 0-1"))          // 3 plies
	c.Add(game(t, "1. c4 c5 2. Nf3 Nf6 1/2-1/2")) // 4 plies
	c.Add(game(t, "1. e4 e5 1-0"))                // duplicate

	summary := c.Summarize()
	testutil.AssertEqual(t, summary.Games, 3)
	testutil.AssertEqual(t, summary.Duplicates, 1)
	testutil.AssertEqual(t, summary.MeanPlies, 3.0)
	testutil.AssertEqual(t, summary.MedianPlies, 3.0)
	if math.Abs(summary.StdDevPlies-math.Sqrt(2.0/3.0)) > 1e-9 {
		t.Errorf("StdDevPlies = %v", summary.StdDevPlies)
	}

	want := map[string]int{"1-0": 1, "0-1": 1, "1/2-1/2": 1}
	testutil.AssertEqual(t, summary.Results, want)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := New().Summarize()
	testutil.AssertEqual(t, summary.Games, 0)
	testutil.AssertEqual(t, summary.MeanPlies, 0.0)
}

package hz

import (
	"strings"
	"testing"
)

func TestSummarizeMeanAndMax(t *testing.T) {
	var r Registry
	// Produces the frequency window [0, 100, 50, 100].
	for _, ts := range []uint64{0, 10, 30, 40} {
		r.Record(Mouse, ts)
	}
	summaries := Summarize(&r)
	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.Class != Mouse {
		t.Fatalf("expected Mouse summary, got %v", s.Class)
	}
	if s.Max != 100.0 {
		t.Fatalf("expected max 100Hz, got %v", s.Max)
	}
	if s.Avg != 62.5 {
		t.Fatalf("expected avg 62.5Hz, got %v", s.Avg)
	}
	if s.Samples != 4 {
		t.Fatalf("expected 4 samples, got %d", s.Samples)
	}
}

func TestSummarizeOmitsEmptyClasses(t *testing.T) {
	var r Registry
	if got := Summarize(&r); len(got) != 0 {
		t.Fatalf("expected no summaries for empty registry, got %v", got)
	}
	r.Record(Keyboard, 100)
	summaries := Summarize(&r)
	if len(summaries) != 1 || summaries[0].Class != Keyboard {
		t.Fatalf("expected only Keyboard summarized, got %v", summaries)
	}
}

func TestRenderText(t *testing.T) {
	var b strings.Builder
	summaries := []Summary{
		{Class: Keyboard, Max: 33.3, Avg: 30.25, Samples: 10},
		{Class: Mouse, Max: 100.0, Avg: 62.5, Samples: 4},
	}
	if err := RenderText(&b, summaries); err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "Type: Keyboard Max: 33.3Hz Avg: 30.2Hz\n" +
		"Type: Mouse Max: 100.0Hz Avg: 62.5Hz\n"
	if b.String() != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", b.String(), want)
	}
}

package syllabus

import (
	"reflect"
	"testing"
)

func TestExtractTopicsStripsMarkersAndCreditHours(t *testing.T) {
	raw := "1. Binary Trees\n- Graph Algorithms\nModule 3: Recursion\n5L\nOK"
	got := ExtractTopics(raw)
	want := []string{"Binary Trees", "Graph Algorithms", "Recursion"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractTopicsPreservesOrder(t *testing.T) {
	raw := "* Dynamic Programming\nUnit 2: Greedy Algorithms\n2. Hash Tables"
	got := ExtractTopics(raw)
	want := []string{"Dynamic Programming", "Greedy Algorithms", "Hash Tables"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractTopicsDropsShortLines(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n\t\n"},
		{"single token lines without markers", "Recursion\nOK\n3L"},
		{"marker only", "1.\n-\nModule 3:"},
		{"marker with only credit hours", "1. 3L"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractTopics(tc.raw); len(got) != 0 {
				t.Fatalf("expected no topics, got %v", got)
			}
		})
	}
}

func TestExtractTopicsKeepsSingleTokenTopicsBehindMarkers(t *testing.T) {
	raw := "Module 3: Recursion\n- Sorting\n2. Hashing"
	got := ExtractTopics(raw)
	want := []string{"Recursion", "Sorting", "Hashing"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractTopicsTrailingCreditHours(t *testing.T) {
	raw := "Sorting and Searching 4L\nAmortized Analysis 10 l"
	got := ExtractTopics(raw)
	want := []string{"Sorting and Searching", "Amortized Analysis"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractTopicsIdempotent(t *testing.T) {
	raw := "1. Binary Trees\nModule 2: Graph Algorithms 3L\nContext Free Grammars"
	once := ExtractTopics(raw)

	var again []string
	for _, topic := range once {
		again = append(again, ExtractTopics(topic)...)
	}
	if !reflect.DeepEqual(once, again) {
		t.Fatalf("not idempotent: first %v, second %v", once, again)
	}
}

func TestExtractTopicsStripsOnlyFirstMarker(t *testing.T) {
	got := ExtractTopics("1. - Double Marked Topic")
	want := []string{"- Double Marked Topic"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

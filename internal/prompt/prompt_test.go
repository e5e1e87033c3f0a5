package prompt

import (
	"strconv"
	"strings"
	"testing"
)

func TestBuildDeterministic(t *testing.T) {
	topics := []string{"Binary Trees", "Graph Algorithms"}
	titles := []string{"Intro to BST", "AVL Rotations"}

	first := Build(topics, titles)
	second := Build(topics, titles)
	if first != second {
		t.Fatalf("identical inputs produced different prompts")
	}
}

func TestBuildContainsAllInputsInOrder(t *testing.T) {
	topics := []string{"Binary Trees", "Graph Algorithms", "Recursion"}
	titles := []string{"Intro to BST", "AVL Rotations", "DFS Explained"}

	out := Build(topics, titles)

	if !strings.Contains(out, "VALID JSON") {
		t.Fatalf("missing JSON instruction in prompt:\n%s", out)
	}

	lastTopic := -1
	for _, topic := range topics {
		idx := strings.Index(out, "- "+topic+"\n")
		if idx < 0 {
			t.Fatalf("topic %q not rendered", topic)
		}
		if idx < lastTopic {
			t.Fatalf("topic %q rendered out of order", topic)
		}
		lastTopic = idx
	}

	lastTitle := -1
	for i, title := range titles {
		want := "\n" + strconv.Itoa(i+1) + ". " + title + "\n"
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("title %q not rendered as %q", title, want)
		}
		if idx < lastTitle {
			t.Fatalf("title %q rendered out of order", title)
		}
		lastTitle = idx
	}
}

func TestBuildEmptyInputs(t *testing.T) {
	out := Build(nil, nil)
	if !strings.Contains(out, "Syllabus Topics:\n") {
		t.Fatalf("missing topics header:\n%s", out)
	}
	if !strings.Contains(out, "Video Titles:\n") {
		t.Fatalf("missing titles header:\n%s", out)
	}
}

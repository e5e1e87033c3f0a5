package playlist

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePlaylistID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"full playlist url", "https://www.youtube.com/playlist?list=PLabc123", "PLabc123"},
		{"watch url with list", "https://www.youtube.com/watch?v=xyz&list=PLabc123&index=2", "PLabc123"},
		{"bare id", "PLabc123", "PLabc123"},
		{"surrounding whitespace", "  PLabc123  ", "PLabc123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePlaylistID(tc.input)
			if err != nil {
				t.Fatalf("ParsePlaylistID(%q): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParsePlaylistIDInvalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"url without list param", "https://www.youtube.com/watch?v=xyz"},
		{"not an id", "watch this one?list"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePlaylistID(tc.input)
			if !errors.Is(err, ErrInvalidURL) {
				t.Fatalf("expected ErrInvalidURL for %q, got %v", tc.input, err)
			}
		})
	}
}

func TestTitlesPreservesOrder(t *testing.T) {
	videos := []Video{
		{Index: 1, Title: "Intro to BST"},
		{Index: 2, Title: "AVL Rotations"},
		{Index: 3, Title: "Red-Black Trees"},
	}
	got := Titles(videos)
	want := []string{"Intro to BST", "AVL Rotations", "Red-Black Trees"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTitlesEmpty(t *testing.T) {
	if got := Titles(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

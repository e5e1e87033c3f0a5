package main

// Render the prompt for a syllabus read from stdin:
//   go run ./cmd/prompttest -titles "Intro to BST,AVL Rotations" < syllabus.txt

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"playlist-backend/internal/prompt"
	"playlist-backend/internal/syllabus"
)

func main() {
	titlesFlag := flag.String("titles", "", "comma-separated video titles")
	flag.Parse()

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	var titles []string
	for _, t := range strings.Split(*titlesFlag, ",") {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			titles = append(titles, trimmed)
		}
	}

	topics := syllabus.ExtractTopics(string(raw))
	fmt.Printf("topics (%d):\n", len(topics))
	for _, topic := range topics {
		fmt.Printf("  %s\n", topic)
	}
	fmt.Println("---")
	fmt.Print(prompt.Build(topics, titles))
}

package modelout

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Recommendation maps one syllabus topic to the video titles the model
// matched against it. Order within Videos follows the model output.
type Recommendation struct {
	Topic  string   `json:"topic"`
	Videos []string `json:"videos"`
}

// ParseError reports that model output could not be decoded. Raw carries
// the original text unmodified so operators can inspect what the model
// actually returned.
type ParseError struct {
	Detail string
	Raw    string
}

func (e *ParseError) Error() string {
	return "model output parse: " + e.Detail
}

// Fenced blocks like ```json\n...\n``` or ```python\n...\n```; models
// frequently wrap structured output this way.
var fencePattern = regexp.MustCompile("(?s)```(?:json|python)?\n(.*?)```")

// Parse recovers a recommendation list from raw model output. It tries, in
// order: fenced-block extraction, strict JSON decoding, and a restricted
// literal-grammar fallback for Python-style quoting. It never panics; any
// undecodable input yields a *ParseError carrying the raw text.
func Parse(raw string) ([]Recommendation, error) {
	candidate := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(raw); m != nil {
		candidate = strings.TrimSpace(m[1])
	}

	recs, jsonErr := decodeJSON(candidate)
	if jsonErr == nil {
		return recs, nil
	}

	recs, litErr := decodeLiteral(candidate)
	if litErr == nil {
		return recs, nil
	}

	return nil, &ParseError{
		Detail: fmt.Sprintf("json: %v; literal: %v", jsonErr, litErr),
		Raw:    raw,
	}
}

// recommendationWire uses pointers so absent fields are distinguishable
// from empty ones; both are required.
type recommendationWire struct {
	Topic  *string   `json:"topic"`
	Videos *[]string `json:"videos"`
}

func decodeJSON(candidate string) ([]Recommendation, error) {
	var wire []recommendationWire
	if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
		return nil, err
	}
	return fromWire(wire)
}

func fromWire(wire []recommendationWire) ([]Recommendation, error) {
	recs := make([]Recommendation, 0, len(wire))
	for i, w := range wire {
		if w.Topic == nil {
			return nil, fmt.Errorf("element %d: missing topic", i)
		}
		if w.Videos == nil {
			return nil, fmt.Errorf("element %d: missing videos", i)
		}
		recs = append(recs, Recommendation{Topic: *w.Topic, Videos: *w.Videos})
	}
	return recs, nil
}

// decodeLiteral runs the closed-grammar literal parser and shapes the
// result into recommendations.
func decodeLiteral(candidate string) ([]Recommendation, error) {
	value, err := parseLiteral(candidate)
	if err != nil {
		return nil, err
	}

	list, ok := value.([]any)
	if !ok {
		return nil, errors.New("top-level value is not a list")
	}

	recs := make([]Recommendation, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: not a mapping", i)
		}
		topicVal, ok := entry["topic"]
		if !ok {
			return nil, fmt.Errorf("element %d: missing topic", i)
		}
		topic, ok := topicVal.(string)
		if !ok {
			return nil, fmt.Errorf("element %d: topic is not a string", i)
		}
		videosVal, ok := entry["videos"]
		if !ok {
			return nil, fmt.Errorf("element %d: missing videos", i)
		}
		videosList, ok := videosVal.([]any)
		if !ok {
			return nil, fmt.Errorf("element %d: videos is not a list", i)
		}
		videos := make([]string, 0, len(videosList))
		for j, v := range videosList {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("element %d: video %d is not a string", i, j)
			}
			videos = append(videos, s)
		}
		recs = append(recs, Recommendation{Topic: topic, Videos: videos})
	}
	return recs, nil
}

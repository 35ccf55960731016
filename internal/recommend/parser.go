package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thesaddamsyed/fitness-microservices/internal/domain"
)

// Sentinel strings satisfying the non-empty-list invariant when the provider
// yields nothing for a category.
const (
	SentinelImprovements = "No specific improvements provided"
	SentinelSuggestions  = "No specific suggestions provided"
	SentinelSafety       = "No specific safety measures provided"

	// FallbackAnalysis is the analysis text of a fallback recommendation.
	FallbackAnalysis = "Error processing AI response. Please try again later."
)

var (
	errNoCandidates = errors.New("provider envelope has no generated text")
	errBadEnvelope  = errors.New("provider envelope is not valid JSON")
	errBadPayload   = errors.New("generated text is not valid JSON")
)

// geminiEnvelope mirrors the provider's nested response shape down to the
// single field we need: candidates[0].content.parts[0].text.
type geminiEnvelope struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// recommendationDoc holds the four sections as raw JSON so each one can be
// decoded independently; a malformed sibling never blocks the others.
type recommendationDoc struct {
	Analysis     json.RawMessage `json:"analysis"`
	Improvements json.RawMessage `json:"improvements"`
	Suggestions  json.RawMessage `json:"suggestions"`
	Safety       json.RawMessage `json:"safety"`
}

// Parse converts the provider's raw reply into a Recommendation. Every
// outcome is a valid Recommendation: unrecoverable envelope or payload
// failures collapse into the fallback variant, which still carries the
// activity's identifiers and is treated as a successful pipeline result.
func Parse(activity domain.Activity, raw string) domain.Recommendation {
	doc, err := extractGeneratedJSON(raw)
	if err != nil {
		recordParseFallback(reasonFor(err))
		return fallbackRecommendation(activity)
	}

	rec := newRecommendation(activity)
	rec.Analysis = buildAnalysis(doc.Analysis)
	rec.Improvements = extractPairs(doc.Improvements, "area", "recommendation", SentinelImprovements)
	rec.Suggestions = extractPairs(doc.Suggestions, "workout", "description", SentinelSuggestions)
	rec.SafetyMeasures = extractStrings(doc.Safety, SentinelSafety)
	recordParsed()
	return rec
}

// extractGeneratedJSON walks the provider envelope, strips any code fence
// around the generated text, and decodes the remainder.
func extractGeneratedJSON(raw string) (*recommendationDoc, error) {
	var envelope geminiEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadEnvelope, err)
	}

	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, errNoCandidates
	}
	text := envelope.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return nil, errNoCandidates
	}

	var doc recommendationDoc
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadPayload, err)
	}
	return &doc, nil
}

// stripCodeFence removes a surrounding markdown fence and any stray prose
// around the JSON object.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}
	return text
}

var analysisSections = []struct {
	key   string
	label string
}{
	{"overall", "Overall"},
	{"pace", "Pace"},
	{"heartRate", "Heart Rate"},
	{"caloriesBurned", "Calories"},
}

// buildAnalysis assembles the labeled analysis text. Missing sub-keys are
// skipped; a malformed analysis node yields an empty text.
func buildAnalysis(raw json.RawMessage) string {
	var node map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &node) != nil {
		return ""
	}

	var b strings.Builder
	for _, section := range analysisSections {
		value, ok := node[section.key]
		if !ok {
			continue
		}
		text, ok := scalarText(value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(section.label)
		b.WriteString(": ")
		b.WriteString(text)
	}
	return b.String()
}

// extractPairs renders an array of {first, second} objects as "first: second"
// lines. Anything other than a non-empty array substitutes the sentinel.
func extractPairs(raw json.RawMessage, firstKey, secondKey, sentinel string) []string {
	var items []map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []string{sentinel}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		first, _ := scalarText(item[firstKey])
		second, _ := scalarText(item[secondKey])
		out = append(out, fmt.Sprintf("%s: %s", first, second))
	}
	if len(out) == 0 {
		return []string{sentinel}
	}
	return out
}

// extractStrings renders an array of plain strings, falling back to the
// sentinel when the field is missing, mis-shaped, or empty.
func extractStrings(raw json.RawMessage, sentinel string) []string {
	var items []any
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []string{sentinel}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if text, ok := scalarText(item); ok {
			out = append(out, text)
		}
	}
	if len(out) == 0 {
		return []string{sentinel}
	}
	return out
}

// scalarText renders JSON scalars as text; objects and arrays are rejected.
func scalarText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return fmt.Sprintf("%v", v), true
	case bool:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

func newRecommendation(activity domain.Activity) domain.Recommendation {
	return domain.Recommendation{
		ID:           uuid.NewString(),
		ActivityID:   activity.ID,
		UserID:       activity.UserID,
		ActivityType: activity.Type,
		CreatedAt:    time.Now().UTC(),
	}
}

// fallbackRecommendation is the degraded-but-valid result for unparseable
// provider output. A parse failure is not an infrastructure failure, so this
// still counts as a successful pipeline outcome.
func fallbackRecommendation(activity domain.Activity) domain.Recommendation {
	rec := newRecommendation(activity)
	rec.Analysis = FallbackAnalysis
	rec.Improvements = []string{SentinelImprovements}
	rec.Suggestions = []string{SentinelSuggestions}
	rec.SafetyMeasures = []string{SentinelSafety}
	return rec
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, errBadEnvelope):
		return "bad_envelope"
	case errors.Is(err, errNoCandidates):
		return "no_candidates"
	case errors.Is(err, errBadPayload):
		return "bad_payload"
	default:
		return "unknown"
	}
}

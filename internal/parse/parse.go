// Package parse extracts and validates structured payloads from raw
// generation output. Models wrap JSON in markdown fences, lead with prose,
// and trail with commentary; everything here is tolerant of that. Failures
// are typed so the lifecycle controller can offer retry instead of surfacing
// a raw unmarshal error.
package parse

import (
	"encoding/json"
	"strings"

	"github.com/riftline/encounter-engine/internal/errors"
	"github.com/riftline/encounter-engine/internal/prompt"
)

// ExtractJSON locates the JSON body inside raw model output. Markdown fences
// and any prose before the first '{' or after the last '}' are discarded.
func ExtractJSON(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", errors.EmptyResponse("generation service returned nothing")
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", errors.MalformedJSON("no JSON body found in response")
	}

	return cleaned[start : end+1], nil
}

// ParseInit parses and validates an initialization response. Both party and
// enemies must be present as lists.
func ParseInit(raw string) (*InitResponse, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	// Parse into a loose shape first so a present-but-empty list can be told
	// apart from an absent one.
	var probe struct {
		Party   *json.RawMessage `json:"party"`
		Enemies *json.RawMessage `json:"enemies"`
	}
	if err := json.Unmarshal([]byte(body), &probe); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformedJSON, "failed to parse init response")
	}
	if probe.Party == nil {
		return nil, errors.MissingRequiredField("init response has no party list")
	}
	if probe.Enemies == nil {
		return nil, errors.MissingRequiredField("init response has no enemies list")
	}

	var resp InitResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformedJSON, "failed to parse init response")
	}
	if resp.Party == nil || resp.Enemies == nil {
		return nil, errors.MissingRequiredField("party and enemies must be lists")
	}

	return &resp, nil
}

// ParseAction parses and validates an action-resolution response. The
// combatStats container must be present; everything else is optional.
func ParseAction(raw string) (*ActionResponse, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var resp ActionResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformedJSON, "failed to parse action response")
	}
	if resp.CombatStats == nil {
		return nil, errors.MissingRequiredField("action response has no combatStats")
	}

	return &resp, nil
}

// ParseSummary extracts the summary text. There is no structural validation;
// the sentinel tag and surrounding whitespace are stripped.
func ParseSummary(raw string) string {
	text := strings.TrimSpace(raw)
	if i := strings.Index(text, prompt.SummarySentinel); i != -1 {
		text = text[i+len(prompt.SummarySentinel):]
	}
	return strings.TrimSpace(text)
}

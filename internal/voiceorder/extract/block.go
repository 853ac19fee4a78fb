package extract

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"voice-ordering/internal/voiceorder"
)

// Status tells what FindBlock saw in an assistant reply.
type Status int

const (
	// StatusAbsent means the reply carries no start marker.
	StatusAbsent Status = iota
	// StatusMalformed means a start marker was found but the block could not be decoded.
	StatusMalformed
	// StatusValid means the block decoded into a Payload.
	StatusValid
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusMalformed:
		return "malformed"
	case StatusValid:
		return "valid"
	default:
		return "unknown"
	}
}

var (
	ErrMissingEndMarker = errors.New("completion block has no end marker after the start marker")
	ErrEndBeforeStart   = errors.New("completion block end marker precedes the start marker")
	ErrNotAnObject      = errors.New("completion block payload is not a JSON object")
)

// Block is the result of scanning one assistant reply.
type Block struct {
	Status  Status
	Raw     string
	Payload Payload
	Err     error
}

var (
	fencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	blockPattern = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(voiceorder.StartMarker) + `.*?` + regexp.QuoteMeta(voiceorder.EndMarker))
	emptyFence   = regexp.MustCompile("```(?:json)?\\s*```")
)

// FindBlock locates the first completion block in text and decodes its payload.
func FindBlock(text string) Block {
	start := strings.Index(text, voiceorder.StartMarker)
	if start < 0 {
		return Block{Status: StatusAbsent}
	}

	body := text[start+len(voiceorder.StartMarker):]
	end := strings.Index(text, voiceorder.EndMarker)
	switch {
	case end < 0:
		return Block{Status: StatusMalformed, Raw: strings.TrimSpace(body), Err: ErrMissingEndMarker}
	case end < start:
		return Block{Status: StatusMalformed, Raw: strings.TrimSpace(body), Err: ErrEndBeforeStart}
	}

	raw := strings.TrimSpace(text[start+len(voiceorder.StartMarker) : end])
	payload, err := decodePayload(raw)
	if err != nil {
		return Block{Status: StatusMalformed, Raw: raw, Err: err}
	}
	return Block{Status: StatusValid, Raw: raw, Payload: payload}
}

// StripBlock removes completion blocks from text so it can be shown to a
// customer. A dangling start marker hides everything after it.
func StripBlock(text string) string {
	out := blockPattern.ReplaceAllString(text, "")
	if i := strings.Index(out, voiceorder.StartMarker); i >= 0 {
		out = out[:i]
	}
	out = emptyFence.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

func decodePayload(raw string) (Payload, error) {
	raw = sanitizeJSON(raw)
	if !strings.HasPrefix(raw, "{") {
		return Payload{}, ErrNotAnObject
	}

	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// sanitizeJSON unwraps Markdown code fences and trims text around the object.
func sanitizeJSON(text string) string {
	if m := fencePattern.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return strings.TrimSpace(text)
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(text[start : end+1])
}

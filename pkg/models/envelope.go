package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/seenimoa/finsight/pkg/utils"
)

// MetadataKey is the reserved envelope key holding request metadata.
const MetadataKey = "metadata"

// ErrInvalidEnvelope is returned when a response envelope is not a JSON object.
var ErrInvalidEnvelope = errors.New("invalid envelope")

// Metadata describes the request that produced an envelope.
type Metadata struct {
	Question       string `json:"question,omitempty"`
	DetectedTicker string `json:"detected_ticker,omitempty"`
	Timestamp      string `json:"timestamp,omitempty"`
	Explanation    string `json:"explanation,omitempty"`
}

// EnvelopeEntry is one tagged payload of a response envelope.
type EnvelopeEntry struct {
	Tag         string          `json:"-"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Data        json.RawMessage `json:"data"`
}

// HasData reports whether the entry carries a usable payload. Null, false,
// zero and the empty string count as no payload.
func (e EnvelopeEntry) HasData() bool {
	switch string(bytes.TrimSpace(e.Data)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

// Envelope is a multi-type data response with its key order preserved.
type Envelope struct {
	Entries  []EnvelopeEntry
	Metadata *Metadata

	index map[string]int
}

// Ticker returns the detected ticker symbol, or "" when none was detected.
func (e *Envelope) Ticker() string {
	if e == nil || e.Metadata == nil {
		return ""
	}
	return utils.NormalizeTicker(e.Metadata.DetectedTicker)
}

// Question returns the user question recorded in the metadata.
func (e *Envelope) Question() string {
	if e == nil || e.Metadata == nil {
		return ""
	}
	return e.Metadata.Question
}

// Add appends an entry. An entry whose tag is already present replaces the
// earlier one in place.
func (e *Envelope) Add(entry EnvelopeEntry) {
	if e.index == nil {
		e.index = make(map[string]int, len(e.Entries))
		for i, existing := range e.Entries {
			e.index[existing.Tag] = i
		}
	}
	if i, ok := e.index[entry.Tag]; ok {
		e.Entries[i] = entry
		return
	}
	e.index[entry.Tag] = len(e.Entries)
	e.Entries = append(e.Entries, entry)
}

// Get returns the entry stored under tag.
func (e *Envelope) Get(tag string) (EnvelopeEntry, bool) {
	for _, entry := range e.Entries {
		if entry.Tag == tag {
			return entry, true
		}
	}
	return EnvelopeEntry{}, false
}

type rawEntry struct {
	Category    json.RawMessage `json:"category"`
	Description json.RawMessage `json:"description"`
	Data        json.RawMessage `json:"data"`
}

// ParseEnvelope decodes a response envelope, keeping tags in document order.
// Values that are not objects or lack a string category are skipped.
func ParseEnvelope(data []byte) (*Envelope, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level must be an object", ErrInvalidEnvelope)
	}

	env := &Envelope{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrInvalidEnvelope, key, err)
		}

		if key == MetadataKey {
			var md Metadata
			if json.Unmarshal(value, &md) == nil {
				env.Metadata = &md
			}
			continue
		}

		entry, ok := decodeEntry(key, value)
		if !ok {
			continue
		}
		env.Add(entry)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return env, nil
}

func decodeEntry(tag string, value json.RawMessage) (EnvelopeEntry, bool) {
	var raw rawEntry
	if err := json.Unmarshal(value, &raw); err != nil {
		return EnvelopeEntry{}, false
	}
	var category string
	if err := json.Unmarshal(raw.Category, &category); err != nil || category == "" {
		return EnvelopeEntry{}, false
	}
	var description string
	_ = json.Unmarshal(raw.Description, &description)

	return EnvelopeEntry{
		Tag:         tag,
		Category:    category,
		Description: description,
		Data:        raw.Data,
	}, true
}

// MarshalJSON writes the envelope back in its original key order.
func (e *Envelope) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range e.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if entry.Data == nil {
			entry.Data = json.RawMessage("null")
		}
		if err := writeMember(&buf, entry.Tag, entry); err != nil {
			return nil, err
		}
	}
	if e.Metadata != nil {
		if len(e.Entries) > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, MetadataKey, e.Metadata); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

package models

import "bytes"

// SummaryEntry is one value of the aggregate summary map.
type SummaryEntry struct {
	Type    string  `json:"type"`
	Summary Summary `json:"summary"`
}

// SummaryMap maps data-type tags to summaries in insertion order.
type SummaryMap struct {
	keys    []string
	entries map[string]SummaryEntry
}

// NewSummaryMap returns an empty map.
func NewSummaryMap() *SummaryMap {
	return &SummaryMap{entries: make(map[string]SummaryEntry)}
}

// Set stores an entry. Re-setting a tag keeps its original position.
func (m *SummaryMap) Set(tag string, entry SummaryEntry) {
	if m.entries == nil {
		m.entries = make(map[string]SummaryEntry)
	}
	if _, ok := m.entries[tag]; !ok {
		m.keys = append(m.keys, tag)
	}
	m.entries[tag] = entry
}

// Get returns the entry stored for tag.
func (m *SummaryMap) Get(tag string) (SummaryEntry, bool) {
	if m == nil {
		return SummaryEntry{}, false
	}
	e, ok := m.entries[tag]
	return e, ok
}

// Keys returns the tags in insertion order.
func (m *SummaryMap) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of tags.
func (m *SummaryMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON writes the entries as an object in insertion order.
func (m *SummaryMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m != nil {
		for i, k := range m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeMember(&buf, k, m.entries[k]); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Tally counts occurrences of string keys, remembering first-seen order.
type Tally struct {
	keys   []string
	counts map[string]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// Inc adds one to key.
func (t *Tally) Inc(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Count returns how often key was seen.
func (t *Tally) Count(key string) int {
	if t == nil {
		return 0
	}
	return t.counts[key]
}

// Keys returns the counted keys in first-seen order.
func (t *Tally) Keys() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.keys...)
}

// Len returns the number of distinct keys.
func (t *Tally) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// MarshalJSON writes the counts as an object in first-seen order.
func (t *Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if t != nil {
		for i, k := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeMember(&buf, k, t.counts[k]); err != nil {
				return nil, err
			}
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

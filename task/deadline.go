package task

import "encoding/json"

// Deadline is an optional free-form deadline. The zero value has no deadline.
// The text is not validated; "2025-12-31" and "next friday" are both accepted.
type Deadline struct {
	text string
	set  bool
}

// None returns an unset deadline.
func None() Deadline {
	return Deadline{}
}

// Some returns a deadline holding text. Empty text yields None.
func Some(text string) Deadline {
	if text == "" {
		return Deadline{}
	}
	return Deadline{text: text, set: true}
}

// Value returns the deadline text and whether one is set.
func (d Deadline) Value() (string, bool) {
	return d.text, d.set
}

// IsSet reports whether a deadline is present.
func (d Deadline) IsSet() bool {
	return d.set
}

// String returns the deadline text, or "None" when unset.
func (d Deadline) String() string {
	if !d.set {
		return "None"
	}
	return d.text
}

// MarshalJSON encodes an unset deadline as null.
func (d Deadline) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.text)
}

// UnmarshalJSON accepts a string or null.
func (d *Deadline) UnmarshalJSON(data []byte) error {
	var text *string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	if text == nil {
		*d = None()
		return nil
	}
	*d = Some(*text)
	return nil
}

// ChangeKind selects how a DeadlineChange affects a deadline.
type ChangeKind int

const (
	// Keep leaves the deadline as it is.
	Keep ChangeKind = iota
	// Clear removes the deadline.
	Clear
	// Set replaces the deadline.
	Set
)

func (k ChangeKind) String() string {
	switch k {
	case Clear:
		return "clear"
	case Set:
		return "set"
	default:
		return "keep"
	}
}

// DeadlineChange describes an edit to a task deadline.
// The zero value keeps the current deadline.
type DeadlineChange struct {
	Kind ChangeKind
	Text string
}

// KeepDeadline leaves the deadline unchanged.
func KeepDeadline() DeadlineChange {
	return DeadlineChange{Kind: Keep}
}

// ClearDeadline removes the deadline.
func ClearDeadline() DeadlineChange {
	return DeadlineChange{Kind: Clear}
}

// SetDeadline replaces the deadline with text. Empty text keeps the
// current deadline.
func SetDeadline(text string) DeadlineChange {
	if text == "" {
		return KeepDeadline()
	}
	return DeadlineChange{Kind: Set, Text: text}
}

// Apply returns the deadline that results from applying the change to d.
func (c DeadlineChange) Apply(d Deadline) Deadline {
	switch c.Kind {
	case Clear:
		return None()
	case Set:
		if c.Text == "" {
			return d
		}
		return Some(c.Text)
	default:
		return d
	}
}

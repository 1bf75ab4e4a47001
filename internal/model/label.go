// Package model defines the value types shared between the dataset loader
// and the HTTP layer.  The dataset is a JSON mapping from raw input string
// to a record whose "Label" field may be either a single string or a list
// of strings; Label makes that distinction explicit instead of hiding it
// behind an interface{}.
package model

import (
	"encoding/json"
	"fmt"
)

// Label is the payload returned for a successful lookup.  It holds either
// a single string or a list of strings, mirrored exactly from the dataset.
//
// Fields:
//
//	Scalar – the single-string form; valid when IsList is false.
//	List   – the list form; valid when IsList is true.
//	IsList – which of the two forms the dataset used for this entry.
type Label struct {
	Scalar string
	List   []string
	IsList bool
}

// UnmarshalJSON accepts a JSON string or an array of strings and rejects
// every other shape so a malformed dataset fails the whole load.
func (l *Label) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for strings and slices, so it
	// has to be rejected up front.
	if string(data) == "null" {
		return fmt.Errorf("label must be a string or an array of strings, got null")
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Label{Scalar: s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = Label{List: list, IsList: true}
		return nil
	}
	return fmt.Errorf("label must be a string or an array of strings, got %s", data)
}

// MarshalJSON writes the label back in the same shape it was loaded with,
// so a scalar entry stays a scalar on the wire and a list stays a list.
func (l Label) MarshalJSON() ([]byte, error) {
	if l.IsList {
		if l.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(l.List)
	}
	return json.Marshal(l.Scalar)
}

// Record is one entry of the dataset.  Only the Label field is consumed;
// any extra fields present in the source file are ignored during decoding.
type Record struct {
	Label Label `json:"Label"` // labels_by_input.json uses a capitalised key
}

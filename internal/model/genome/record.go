package genome

import (
	"encoding/json"
	"fmt"
)

// Untitled is the sentinel name given to a freshly downloaded data set
// until the user assigns a permanent one. At most one untitled set may
// exist at a time.
const Untitled = "untitled"

// Traits lists the report categories fetched from genome link, in the
// canonical order used for comparison output.
var Traits = []string{
	"agreeableness", "anger", "conscientiousness",
	"depression", "extraversion", "gambling",
	"harm-avoidance", "neuroticism", "openness",
	"novelty-seeking", "reward-dependence",
}

// TraitValue holds the provider's score and the cleaned speech phrase
// for a single trait.
type TraitValue struct {
	Score  int    `json:"score"`
	Phrase string `json:"phrase"`
}

// TraitRecord maps trait identifiers to their values. A complete record
// contains every entry in Traits.
type TraitRecord map[string]TraitValue

// Clone returns an independent copy of the record.
func (r TraitRecord) Clone() TraitRecord {
	if r == nil {
		return nil
	}
	copied := make(TraitRecord, len(r))
	for k, v := range r {
		copied[k] = v
	}
	return copied
}

// DataSets is an insertion-ordered collection of named trait records.
// Name order matters: spoken lists enumerate data sets in the order they
// were added, which a plain map cannot guarantee.
type DataSets struct {
	names   []string
	records map[string]TraitRecord
}

// NewDataSets returns an empty collection.
func NewDataSets() *DataSets {
	return &DataSets{records: make(map[string]TraitRecord)}
}

// Len reports the number of stored data sets.
func (d *DataSets) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}

// Names returns the data-set names in insertion order.
func (d *DataSets) Names() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.names...)
}

// Has reports whether a data set with the given name exists.
func (d *DataSets) Has(name string) bool {
	if d == nil {
		return false
	}
	_, ok := d.records[name]
	return ok
}

// Get returns the record stored under name.
func (d *DataSets) Get(name string) (TraitRecord, bool) {
	if d == nil {
		return nil, false
	}
	record, ok := d.records[name]
	return record, ok
}

// Put stores record under name, appending the name to the order when it
// is new and replacing the record in place when it is not.
func (d *DataSets) Put(name string, record TraitRecord) {
	if d.records == nil {
		d.records = make(map[string]TraitRecord)
	}
	if _, ok := d.records[name]; !ok {
		d.names = append(d.names, name)
	}
	d.records[name] = record
}

// Rename moves the record stored under oldName to newName. The renamed
// set drops to the end of the insertion order, matching a delete
// followed by an insert. It fails when oldName is absent or newName is
// already taken.
func (d *DataSets) Rename(oldName, newName string) bool {
	if d == nil || !d.Has(oldName) || d.Has(newName) {
		return false
	}
	record := d.records[oldName]
	delete(d.records, oldName)
	for i, n := range d.names {
		if n == oldName {
			d.names = append(d.names[:i], d.names[i+1:]...)
			break
		}
	}
	d.records[newName] = record
	d.names = append(d.names, newName)
	return true
}

// Clone returns a deep copy, preserving insertion order.
func (d *DataSets) Clone() *DataSets {
	copied := NewDataSets()
	if d == nil {
		return copied
	}
	for _, name := range d.names {
		copied.Put(name, d.records[name].Clone())
	}
	return copied
}

// namedRecord is the JSON wire form of one entry; an array of these
// keeps name order stable across store round trips.
type namedRecord struct {
	Name   string      `json:"name"`
	Traits TraitRecord `json:"traits"`
}

// MarshalJSON encodes the collection as an ordered array.
func (d *DataSets) MarshalJSON() ([]byte, error) {
	entries := make([]namedRecord, 0, d.Len())
	if d != nil {
		for _, name := range d.names {
			entries = append(entries, namedRecord{Name: name, Traits: d.records[name]})
		}
	}
	return json.Marshal(entries)
}

// UnmarshalJSON decodes the ordered array form.
func (d *DataSets) UnmarshalJSON(data []byte) error {
	var entries []namedRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode data sets: %w", err)
	}
	d.names = nil
	d.records = make(map[string]TraitRecord, len(entries))
	for _, entry := range entries {
		d.Put(entry.Name, entry.Traits)
	}
	return nil
}

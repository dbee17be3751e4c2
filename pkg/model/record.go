// Copyright © 2026 One Concern

package model

import (
	"encoding/hex"
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	blake2b "github.com/minio/blake2b-simd"
)

// canonical is the codec used for all record serialization: standard
// library compatible JSON, which renders map keys in sorted order. Field
// order within a record therefore never affects serialized bytes.
var canonical = jsoniter.ConfigCompatibleWithStandardLibrary

// IdentityField is the record field used as natural diff key when present.
const IdentityField = "id"

// Record is a single row of a dataset snapshot: an open map of field
// names to values.
type Record map[string]interface{}

// CanonicalBytes returns the canonical serialization of the record,
// with stable (sorted) field ordering.
func (r Record) CanonicalBytes() ([]byte, error) {
	return canonical.Marshal(r)
}

// Key returns the identity key used to match this record across two
// snapshots: the value of the "id" field when present, otherwise a
// content hash of the canonical serialization. Hashing guards against
// key collisions when no natural identifier exists.
func (r Record) Key() (string, error) {
	if id, ok := r[IdentityField]; ok {
		return fmt.Sprintf("id:%v", id), nil
	}
	b, err := r.CanonicalBytes()
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(b)
	return "h:" + hex.EncodeToString(sum[:]), nil
}

// FieldNames returns the sorted field names of the record.
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// MarshalRecords serializes a payload for persistence on a storage store.
func MarshalRecords(records []Record) ([]byte, error) {
	return canonical.Marshal(records)
}

// UnmarshalRecords deserializes a payload read back from a storage store.
func UnmarshalRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := canonical.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// CloneRecords deep-copies a payload through its canonical serialization,
// so callers never alias the engine's own view of the data.
func CloneRecords(records []Record) ([]Record, error) {
	b, err := MarshalRecords(records)
	if err != nil {
		return nil, err
	}
	return UnmarshalRecords(b)
}

// PayloadHash computes the deterministic content hash of a payload, as a
// hex digest.
//
// The digest is computed over each record's canonical bytes in payload
// order: field order within a record does not matter, record order within
// the payload does. Two payloads differing only in record order hash
// differently.
func PayloadHash(records []Record) (string, error) {
	hasher := blake2b.New256()
	for _, r := range records {
		b, err := r.CanonicalBytes()
		if err != nil {
			return "", err
		}
		if _, err = hasher.Write(b); err != nil {
			return "", err
		}
		// record separator keeps adjacent records from folding together
		if _, err = hasher.Write([]byte{'\n'}); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// PayloadFieldNames returns the union of field names observed across all
// records of a payload, sorted.
func PayloadFieldNames(records []Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for k := range r {
			seen[k] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

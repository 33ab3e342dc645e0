// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package seed

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.mongodb.org/mongo-driver/bson"
)

//go:embed data/books.json
var bundled []byte

// Load decodes a JSON array of book records into documents ready for insertion.
//
// Each record is kept verbatim: field order, extra fields and missing fields
// survive as written. Numbers follow relaxed Extended JSON, so whole numbers
// become int32 or int64 and anything with a fraction becomes a double. Any
// "_id" in the input is dropped so the store assigns fresh identifiers.
func Load(reader io.Reader) ([]bson.D, error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("seed: decode dataset: %w", err)
	}

	records := make([]bson.D, 0, len(raw))
	for i, item := range raw {
		var record bson.D
		if err := bson.UnmarshalExtJSON(item, false, &record); err != nil {
			return nil, fmt.Errorf("seed: decode record %d: %w", i, err)
		}
		records = append(records, withoutID(record))
	}

	return records, nil
}

func withoutID(record bson.D) bson.D {
	kept := record[:0]
	for _, field := range record {
		if field.Key != "_id" {
			kept = append(kept, field)
		}
	}
	return kept
}

// Bundled returns the dataset compiled into the binary.
func Bundled() ([]bson.D, error) {
	return Load(bytes.NewReader(bundled))
}

// FromFile reads a dataset from disk.
func FromFile(path string) ([]bson.D, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: open dataset: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// Dataset returns the file at path when set, otherwise the bundled dataset.
func Dataset(path string) ([]bson.D, error) {
	if path != "" {
		return FromFile(path)
	}
	return Bundled()
}

// internal/domain/cart/codec.go
package cart

import (
	"encoding/json"
	"errors"
)

// blobVersion tags the persisted envelope so the shape can change later
// without garbling reads after an update.
const blobVersion = 1

var errBadBlob = errors.New("cart: undecodable blob")

type blobEnvelope struct {
	V     int     `json:"v"`
	Items []Entry `json:"items"`
}

// encodeEntries serializes the full entry sequence into the versioned envelope.
func encodeEntries(items []Entry) ([]byte, error) {
	if items == nil {
		items = []Entry{}
	}
	return json.Marshal(blobEnvelope{V: blobVersion, Items: items})
}

// decodeEntries parses a persisted blob.
// Accepts the versioned envelope and, for carts persisted before versioning,
// a bare JSON array of entries.
func decodeEntries(blob []byte) ([]Entry, error) {
	if len(blob) == 0 {
		return []Entry{}, nil
	}

	var env blobEnvelope
	if err := json.Unmarshal(blob, &env); err == nil && env.V >= 1 {
		if env.Items == nil {
			return []Entry{}, nil
		}
		return env.Items, nil
	}

	// legacy shape: bare array
	var items []Entry
	if err := json.Unmarshal(blob, &items); err != nil {
		return nil, errBadBlob
	}
	if items == nil {
		items = []Entry{}
	}
	return items, nil
}

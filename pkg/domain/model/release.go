package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/drifty-web/releasepage/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ReleaseList is the release array exactly as the upstream API returned it.
// Records are kept as raw JSON and never inspected here.
type ReleaseList struct {
	raw     json.RawMessage
	records []json.RawMessage
}

// ParseReleaseList parses a JSON body that must be an array. A literal null is
// accepted as an empty list.
func ParseReleaseList(data []byte) (ReleaseList, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ReleaseList{}, goerr.New("empty release list body", goerr.Tag(types.ErrTagParse))
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return ReleaseList{}, goerr.Wrap(err, "release list is not a JSON array",
			goerr.Tag(types.ErrTagParse),
			goerr.V("body_size", len(trimmed)),
		)
	}

	return ReleaseList{
		raw:     append(json.RawMessage(nil), trimmed...),
		records: records,
	}, nil
}

// Len returns the number of release records
func (l ReleaseList) Len() int {
	return len(l.records)
}

// Records returns each release record verbatim
func (l ReleaseList) Records() []json.RawMessage {
	return l.records
}

// Raw returns the array as received. An empty list built without parsing
// yields "[]".
func (l ReleaseList) Raw() json.RawMessage {
	if l.raw == nil {
		return json.RawMessage("[]")
	}
	return l.raw
}

// MarshalJSON implements json.Marshaler
func (l ReleaseList) MarshalJSON() ([]byte, error) {
	return l.Raw(), nil
}

// LoadResult is what the data loader hands to the page renderer
type LoadResult struct {
	Releases ReleaseList
	// Revalidate advises caches how long the list may be reused
	Revalidate time.Duration
}

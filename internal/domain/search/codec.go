package search

import (
	"fmt"

	sonic "github.com/bytedance/sonic"
)

// EncodeCriteria serializes criteria for storage. Callers normalize first so
// that the stored form is canonical and replays produce identical queries.
func EncodeCriteria(c Criteria) (string, error) {
	encoded, err := sonic.MarshalString(c)
	if err != nil {
		return "", fmt.Errorf("encode search criteria: %w", err)
	}
	return encoded, nil
}

// DecodeCriteria restores criteria stored by EncodeCriteria.
func DecodeCriteria(encoded string) (Criteria, error) {
	var c Criteria
	if err := sonic.UnmarshalString(encoded, &c); err != nil {
		return Criteria{}, fmt.Errorf("decode search criteria: %w", err)
	}
	return c, nil
}

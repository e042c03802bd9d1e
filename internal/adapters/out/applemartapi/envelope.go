package applemartapi

import "encoding/json"

// The backend wraps collections in several envelope shapes depending on the
// endpoint and serializer settings: a bare JSON array, an object with a named
// collection field, or that field wrapped again in a reference-preserving
// envelope ({"$id": "1", "$values": [...]}). Extraction tries each known
// shape in a fixed priority order; the first success wins and an unknown
// shape yields nil so callers degrade to "no data" instead of erroring.

// collectionExtractor attempts to pull the raw record collection out of one
// known envelope shape. The boolean reports whether the shape matched.
type collectionExtractor func(raw []byte) ([]json.RawMessage, bool)

// extractCollection resolves a response body into its record collection,
// trying the candidate extractors for the given collection field in priority
// order. Returns nil when no known shape matches.
func extractCollection(raw []byte, field string) []json.RawMessage {
	extractors := []collectionExtractor{
		nestedValuesExtractor(field),
		fieldArrayExtractor(field),
		bareArrayExtractor,
		topLevelValuesExtractor,
	}

	for _, extract := range extractors {
		if records, ok := extract(raw); ok {
			return records
		}
	}
	return nil
}

// nestedValuesExtractor matches {"<field>": {"$values": [...]}}.
func nestedValuesExtractor(field string) collectionExtractor {
	return func(raw []byte) ([]json.RawMessage, bool) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, false
		}
		inner, ok := envelope[field]
		if !ok {
			return nil, false
		}
		return valuesArray(inner)
	}
}

// fieldArrayExtractor matches {"<field>": [...]}.
func fieldArrayExtractor(field string) collectionExtractor {
	return func(raw []byte) ([]json.RawMessage, bool) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, false
		}
		inner, ok := envelope[field]
		if !ok {
			return nil, false
		}
		return rawArray(inner)
	}
}

// bareArrayExtractor matches a response that is itself the array.
func bareArrayExtractor(raw []byte) ([]json.RawMessage, bool) {
	return rawArray(raw)
}

// topLevelValuesExtractor matches {"$id": "1", "$values": [...]}, the shape
// the notification and shipper endpoints use.
func topLevelValuesExtractor(raw []byte) ([]json.RawMessage, bool) {
	return valuesArray(raw)
}

// valuesArray resolves a reference-preserving envelope into its array,
// accepting both the "$values" key and the bare "values" variant.
func valuesArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false
	}
	for _, key := range []string{"$values", "values"} {
		if inner, ok := envelope[key]; ok {
			if records, isArray := rawArray(inner); isArray {
				return records, true
			}
		}
	}
	return nil, false
}

// rawArray decodes raw as a JSON array of records.
func rawArray(raw json.RawMessage) ([]json.RawMessage, bool) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false
	}
	return records, true
}

// Package codec converts domain entities to and from the string values held
// in the key-value store. Decoding is strict: unknown fields, trailing data
// and type mismatches all fail closed instead of producing a partially
// populated entity.
package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Qankor386/BookApp/internal/entities"
)

// MalformedRecordError reports a stored value that does not decode. The
// repository treats the record as absent; this error never reaches the
// presentation layer.
type MalformedRecordError struct {
	Err error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record: %v", e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// EncodeBook serializes a single book. The output round-trips exactly
// through DecodeBook, including the absence of optional fields.
func EncodeBook(book entities.Book) (string, error) {
	return encode(book)
}

// DecodeBook parses a single book record.
func DecodeBook(raw string) (entities.Book, error) {
	var book entities.Book
	if err := decodeStrict(raw, &book); err != nil {
		return entities.Book{}, err
	}
	return book, nil
}

// EncodeBooks serializes an ordered book list.
func EncodeBooks(books []entities.Book) (string, error) {
	if books == nil {
		books = []entities.Book{}
	}
	return encode(books)
}

// DecodeBooks parses an ordered book list record.
func DecodeBooks(raw string) ([]entities.Book, error) {
	var books []entities.Book
	if err := decodeStrict(raw, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// EncodeNames serializes an ordered list of collection names.
func EncodeNames(names []string) (string, error) {
	if names == nil {
		names = []string{}
	}
	return encode(names)
}

// DecodeNames parses an ordered list of collection names.
func DecodeNames(raw string) ([]string, error) {
	var names []string
	if err := decodeStrict(raw, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}
	return string(data), nil
}

func decodeStrict(raw string, v any) error {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &MalformedRecordError{Err: err}
	}
	if dec.More() {
		return &MalformedRecordError{Err: fmt.Errorf("trailing data after record")}
	}
	return nil
}

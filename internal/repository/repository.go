// Package repository is the sole access path to the persisted book-tracking
// state. Each logical entity maps to exactly one store key, and lists are
// always replaced whole on write, never patched in place.
//
// Read-modify-write sequences are not serialized across callers: two
// concurrent appends to the same list race, and the last writer wins. That
// matches the single-user usage this application is built for and is left
// as-is on purpose.
package repository

import (
	"context"
	"log"
	"strings"

	"github.com/Qankor386/BookApp/internal/codec"
	"github.com/Qankor386/BookApp/internal/entities"
	"github.com/Qankor386/BookApp/internal/storage"
)

const (
	keyCurrentBook = "currentBook"
	keyReadingList = "reading_books"
	keyCollections = "collections"

	collectionKeyPrefix = "collection_"
)

// collectionKey builds the composite key for a collection's book list. The
// name goes in verbatim, unescaped, matching the original storage layout.
func collectionKey(name string) string {
	return collectionKeyPrefix + name
}

// Repository exposes typed load/save operations over the key-value store.
type Repository struct {
	store storage.Store
}

func New(store storage.Store) *Repository {
	return &Repository{store: store}
}

// LoadCurrentBook returns the book currently being read, or nil when none
// has been saved. A missing or unreadable record is not an error.
func (r *Repository) LoadCurrentBook(ctx context.Context) (*entities.Book, error) {
	raw, ok, err := r.get(ctx, keyCurrentBook)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	book, err := codec.DecodeBook(raw)
	if err != nil {
		log.Printf("WARNING: discarding malformed record under %q: %v", keyCurrentBook, err)
		return nil, nil
	}
	return &book, nil
}

// SaveCurrentBook overwrites the current book unconditionally.
func (r *Repository) SaveCurrentBook(ctx context.Context, book entities.Book) error {
	if !book.HasTitle() {
		return &ValidationError{Field: "book title"}
	}
	raw, err := codec.EncodeBook(book)
	if err != nil {
		return err
	}
	return r.set(ctx, keyCurrentBook, raw)
}

// LoadReadingList returns the ordered reading list, empty when absent.
func (r *Repository) LoadReadingList(ctx context.Context) ([]entities.Book, error) {
	return r.loadBooks(ctx, keyReadingList)
}

// SaveReadingList replaces the whole reading list.
func (r *Repository) SaveReadingList(ctx context.Context, list []entities.Book) error {
	return r.saveBooks(ctx, keyReadingList, list)
}

// AppendToReadingList loads the list, appends book and saves it back. The
// two store operations are not atomic; a crash in between loses the append.
func (r *Repository) AppendToReadingList(ctx context.Context, book entities.Book) error {
	if !book.HasTitle() {
		return &ValidationError{Field: "book title"}
	}
	list, err := r.loadBooks(ctx, keyReadingList)
	if err != nil {
		return err
	}
	return r.saveBooks(ctx, keyReadingList, append(list, book))
}

// RemoveFromReadingList removes the book at the given position. The stored
// list is untouched when index is out of bounds.
func (r *Repository) RemoveFromReadingList(ctx context.Context, index int) error {
	list, err := r.loadBooks(ctx, keyReadingList)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(list) {
		return &IndexOutOfRangeError{Index: index, Length: len(list)}
	}
	return r.saveBooks(ctx, keyReadingList, append(list[:index], list[index+1:]...))
}

// LoadCollectionNames returns the ordered collection names, empty when
// absent.
func (r *Repository) LoadCollectionNames(ctx context.Context) ([]string, error) {
	return r.loadNames(ctx)
}

// AddCollectionName appends name to the collection list. Duplicate names
// are not rejected; duplicates alias the same collection key.
func (r *Repository) AddCollectionName(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "collection name"}
	}
	names, err := r.loadNames(ctx)
	if err != nil {
		return err
	}
	return r.saveNames(ctx, append(names, name))
}

// RemoveCollectionName filters every occurrence of name out of the
// collection list and removes the collection's book list. The second
// deletion is best effort: a failure there does not roll back the name-list
// mutation.
func (r *Repository) RemoveCollectionName(ctx context.Context, name string) error {
	names, err := r.loadNames(ctx)
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	if err := r.saveNames(ctx, kept); err != nil {
		return err
	}
	return r.remove(ctx, collectionKey(name))
}

// LoadCollectionBooks returns the ordered books of a collection, empty when
// the collection is unknown or has no books.
func (r *Repository) LoadCollectionBooks(ctx context.Context, name string) ([]entities.Book, error) {
	return r.loadBooks(ctx, collectionKey(name))
}

// AppendToCollectionBooks loads the collection's book list, appends book
// and saves it back. Same non-atomicity caveat as AppendToReadingList.
func (r *Repository) AppendToCollectionBooks(ctx context.Context, name string, book entities.Book) error {
	if !book.HasTitle() {
		return &ValidationError{Field: "book title"}
	}
	key := collectionKey(name)
	books, err := r.loadBooks(ctx, key)
	if err != nil {
		return err
	}
	return r.saveBooks(ctx, key, append(books, book))
}

// RemoveFromCollectionBooks removes the book at the given position from a
// collection.
func (r *Repository) RemoveFromCollectionBooks(ctx context.Context, name string, index int) error {
	key := collectionKey(name)
	books, err := r.loadBooks(ctx, key)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(books) {
		return &IndexOutOfRangeError{Index: index, Length: len(books)}
	}
	return r.saveBooks(ctx, key, append(books[:index], books[index+1:]...))
}

// LoadBookCounts returns the number of books per collection name. One store
// read per name; fine at the scale of hand-entered data.
func (r *Repository) LoadBookCounts(ctx context.Context, names []string) (map[string]int, error) {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		books, err := r.loadBooks(ctx, collectionKey(name))
		if err != nil {
			return nil, err
		}
		counts[name] = len(books)
	}
	return counts, nil
}

// ClearAll destroys every persisted entity, unconditionally and
// irreversibly.
func (r *Repository) ClearAll(ctx context.Context) error {
	if err := r.store.Clear(ctx); err != nil {
		return &StoreUnavailableError{Op: "clear", Key: "*", Err: err}
	}
	return nil
}

func (r *Repository) get(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return "", false, &StoreUnavailableError{Op: "get", Key: key, Err: err}
	}
	return raw, ok, nil
}

func (r *Repository) set(ctx context.Context, key, value string) error {
	if err := r.store.Set(ctx, key, value); err != nil {
		return &StoreUnavailableError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (r *Repository) remove(ctx context.Context, key string) error {
	if err := r.store.Remove(ctx, key); err != nil {
		return &StoreUnavailableError{Op: "remove", Key: key, Err: err}
	}
	return nil
}

func (r *Repository) loadBooks(ctx context.Context, key string) ([]entities.Book, error) {
	raw, ok, err := r.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entities.Book{}, nil
	}
	books, err := codec.DecodeBooks(raw)
	if err != nil {
		// Fail soft: a corrupted record reads as empty.
		log.Printf("WARNING: discarding malformed record under %q: %v", key, err)
		return []entities.Book{}, nil
	}
	if books == nil {
		books = []entities.Book{}
	}
	return books, nil
}

func (r *Repository) saveBooks(ctx context.Context, key string, books []entities.Book) error {
	raw, err := codec.EncodeBooks(books)
	if err != nil {
		return err
	}
	return r.set(ctx, key, raw)
}

func (r *Repository) loadNames(ctx context.Context) ([]string, error) {
	raw, ok, err := r.get(ctx, keyCollections)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	names, err := codec.DecodeNames(raw)
	if err != nil {
		log.Printf("WARNING: discarding malformed record under %q: %v", keyCollections, err)
		return []string{}, nil
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *Repository) saveNames(ctx context.Context, names []string) error {
	raw, err := codec.EncodeNames(names)
	if err != nil {
		return err
	}
	return r.set(ctx, keyCollections, raw)
}

package repositories

import (
	"encoding/json"
	"os"
	"path/filepath"

	"tienda/internal/models"
)

// jsonFile is the record codec shared by the file-backed repositories: one
// backing document per entity type, holding a JSON array of records. The
// whole collection is loaded into memory for every operation.
type jsonFile[T any] struct {
	path string
}

func newJSONFile[T any](path string) *jsonFile[T] {
	return &jsonFile[T]{path: path}
}

// load reads and parses the backing document. A missing file is not an
// error: the codec writes an empty array and returns an empty collection,
// so the first run bootstraps itself.
func (f *jsonFile[T]) load() ([]T, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if saveErr := f.save(nil); saveErr != nil {
				return nil, saveErr
			}
			return []T{}, nil
		}
		return nil, &models.StorageError{Op: "read", Path: f.path, Err: err}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &models.StorageError{Op: "parse", Path: f.path, Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// save overwrites the document with the full collection, pretty-printed
// with 2-space indent for stable diffs. The bytes go to a temp file in the
// same directory and are renamed into place, so a reader never observes a
// partially written document.
func (f *jsonFile[T]) save(records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &models.StorageError{Op: "encode", Path: f.path, Err: err}
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return &models.StorageError{Op: "write", Path: f.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &models.StorageError{Op: "write", Path: f.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &models.StorageError{Op: "write", Path: f.path, Err: err}
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return &models.StorageError{Op: "write", Path: f.path, Err: err}
	}
	return nil
}

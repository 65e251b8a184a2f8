package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"tienda/internal/models"
	"tienda/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func newTestProduct(code string) *models.Product {
	return &models.Product{
		Title:       "Pen",
		Description: "Blue pen",
		Code:        code,
		Price:       1.5,
		Status:      true,
		Stock:       10,
		Category:    "office",
	}
}

func TestFileProductRepository_Bootstrap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	// The backing document does not exist yet; the first read must create
	// it and report an empty collection, not an error.
	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, products)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileProductRepository_CreateAssignsSequentialIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	for i, code := range []string{"P1", "P2", "P3"} {
		p := newTestProduct(code)
		assert.NoError(t, repo.Create(p))
		assert.Equal(t, i+1, p.ID)
	}

	// Deleting the highest id frees it for the next create.
	assert.NoError(t, repo.Delete(3))
	p := newTestProduct("P4")
	assert.NoError(t, repo.Create(p))
	assert.Equal(t, 3, p.ID)
}

func TestFileProductRepository_CreateDuplicateCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	assert.NoError(t, repo.Create(newTestProduct("P1")))

	dup := newTestProduct("P1")
	dup.Title = "Another pen"
	err := repo.Create(dup)

	var conflictErr *models.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "code", conflictErr.Field)
	assert.Equal(t, "P1", conflictErr.Value)

	// The collection must be unchanged after a rejected create.
	products, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Pen", products[0].Title)

	// Codes match case-sensitively, so a different casing is accepted.
	lower := newTestProduct("p1")
	assert.NoError(t, repo.Create(lower))
}

func TestFileProductRepository_GetByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	assert.NoError(t, repo.Create(newTestProduct("P1")))

	product, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "P1", product.Code)

	var notFoundErr *models.NotFoundError
	_, err = repo.GetByID(99)
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "product", notFoundErr.Entity)
}

func TestFileProductRepository_UpdateMergesPatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	assert.NoError(t, repo.Create(newTestProduct("P1")))

	newPrice := 2.75
	updated, err := repo.Update(1, models.ProductPatch{Price: &newPrice})
	assert.NoError(t, err)

	// Only the patched field changes; everything else, the id included,
	// stays as stored.
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, 2.75, updated.Price)
	assert.Equal(t, "Pen", updated.Title)
	assert.Equal(t, "P1", updated.Code)
	assert.Equal(t, 10, updated.Stock)
	assert.True(t, updated.Status)

	stored, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, *updated, *stored)

	var notFoundErr *models.NotFoundError
	_, err = repo.Update(42, models.ProductPatch{Price: &newPrice})
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestFileProductRepository_Delete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	assert.NoError(t, repo.Create(newTestProduct("P1")))
	assert.NoError(t, repo.Create(newTestProduct("P2")))

	var notFoundErr *models.NotFoundError
	err := repo.Delete(99)
	assert.ErrorAs(t, err, &notFoundErr)

	products, _ := repo.GetAll()
	assert.Len(t, products, 2)

	assert.NoError(t, repo.Delete(1))
	products, _ = repo.GetAll()
	assert.Len(t, products, 1)
	assert.Equal(t, "P2", products[0].Code)
}

func TestFileProductRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	repo := repositories.NewFileProductRepository(path)

	withThumbs := newTestProduct("P1")
	withThumbs.Thumbnails = models.Thumbnails{models.NewThumbnail("pen.png")}
	assert.NoError(t, repo.Create(withThumbs))
	assert.NoError(t, repo.Create(newTestProduct("P2")))

	before, err := os.ReadFile(path)
	assert.NoError(t, err)

	// An empty patch is a load-save cycle with no mutation: writing back
	// exactly what was read must reproduce the document byte for byte.
	reopened := repositories.NewFileProductRepository(path)
	_, err = reopened.Update(1, models.ProductPatch{})
	assert.NoError(t, err)

	after, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestFileProductRepository_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "productsDb.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	repo := repositories.NewFileProductRepository(path)
	_, err := repo.GetAll()

	var storageErr *models.StorageError
	assert.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "parse", storageErr.Op)
}

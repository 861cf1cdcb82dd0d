package services

import (
	"testing"

	"github.com/danfath312/cv-karya-perikanan/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductService(t *testing.T) (ProductService, repository.ProductRepository) {
	t.Helper()
	repo := repository.NewProductRepository(newTestDB(t))
	return NewProductService(repo), repo
}

func TestProductService_CreateDefaults(t *testing.T) {
	service, _ := newProductService(t)

	product, err := service.Create(&ProductInput{
		Name:  strPtr("Fish Skin"),
		Stock: intPtr(10),
		Price: floatPtr(5000),
	})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "Fish Skin", product.Name)
	assert.Equal(t, 10, product.Stock)
	assert.Equal(t, 5000.0, product.Price)
	assert.True(t, product.Available, "availability should default to true")
	assert.False(t, product.CreatedAt.IsZero())
}

func TestProductService_CreateRequiresName(t *testing.T) {
	service, repo := newProductService(t)

	for _, input := range []*ProductInput{
		{},
		{Name: strPtr("")},
		{Name: strPtr("   ")},
	} {
		_, err := service.Create(input)
		assert.ErrorIs(t, err, ErrValidation)
	}

	products, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, products, "no record should be persisted on validation failure")
}

func TestProductService_CreateRejectsNegativeStock(t *testing.T) {
	service, _ := newProductService(t)

	_, err := service.Create(&ProductInput{Name: strPtr("Fish Skin"), Stock: intPtr(-1)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductService_RoundTrip(t *testing.T) {
	service, _ := newProductService(t)

	created, err := service.Create(&ProductInput{
		Name:           strPtr("Sisik Ikan"),
		NameEn:         strPtr("Fish Scales"),
		Description:    strPtr("Sisik ikan premium"),
		Specifications: &[]string{"Grade A", "Kering"},
		Uses:           &[]string{"Kosmetik"},
		Stock:          intPtr(25),
		Price:          floatPtr(50000),
	})
	require.NoError(t, err)

	got, err := service.GetByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Sisik Ikan", got.Name)
	assert.Equal(t, "Fish Scales", got.NameEn)
	assert.Equal(t, []string{"Grade A", "Kering"}, []string(got.Specifications))
	assert.Equal(t, []string{"Kosmetik"}, []string(got.Uses))
	assert.Equal(t, 25, got.Stock)
	assert.Equal(t, 50000.0, got.Price)
}

func TestProductService_UpdatePartial(t *testing.T) {
	service, _ := newProductService(t)

	created, err := service.Create(&ProductInput{
		Name:        strPtr("Kulit Ikan"),
		Description: strPtr("Deskripsi awal"),
		Stock:       intPtr(5),
	})
	require.NoError(t, err)

	updated, err := service.Update(created.ID, &ProductInput{Stock: intPtr(42)})
	require.NoError(t, err)

	assert.Equal(t, 42, updated.Stock)
	assert.Equal(t, "Kulit Ikan", updated.Name, "unspecified fields stay unchanged")
	assert.Equal(t, "Deskripsi awal", updated.Description)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestProductService_UpdateUnknownID(t *testing.T) {
	service, _ := newProductService(t)

	_, err := service.Update(9999, &ProductInput{Name: strPtr("valid name")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductService_ToggleAvailabilityIdempotence(t *testing.T) {
	service, _ := newProductService(t)

	created, err := service.Create(&ProductInput{Name: strPtr("Fish Skin")})
	require.NoError(t, err)
	require.True(t, created.Available)

	once, err := service.ToggleAvailability(created.ID)
	require.NoError(t, err)
	assert.False(t, once.Available)

	twice, err := service.ToggleAvailability(created.ID)
	require.NoError(t, err)
	assert.True(t, twice.Available, "double toggle returns the original value")
}

func TestProductService_SetStock(t *testing.T) {
	service, _ := newProductService(t)

	created, err := service.Create(&ProductInput{Name: strPtr("Fish Skin"), Stock: intPtr(10)})
	require.NoError(t, err)

	updated, err := service.SetStock(created.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)

	_, err = service.SetStock(created.ID, -1)
	assert.ErrorIs(t, err, ErrValidation)

	got, err := service.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock, "rejected stock update must not change stored value")
}

func TestProductService_GetAvailable(t *testing.T) {
	service, _ := newProductService(t)

	_, err := service.Create(&ProductInput{Name: strPtr("Tersedia")})
	require.NoError(t, err)
	hidden, err := service.Create(&ProductInput{Name: strPtr("Habis"), Available: boolPtr(false)})
	require.NoError(t, err)

	available, err := service.GetAvailable()
	require.NoError(t, err)

	require.Len(t, available, 1)
	assert.Equal(t, "Tersedia", available[0].Name)
	assert.NotEqual(t, hidden.ID, available[0].ID)
}

func TestProductService_Delete(t *testing.T) {
	service, _ := newProductService(t)

	created, err := service.Create(&ProductInput{Name: strPtr("Fish Skin")})
	require.NoError(t, err)

	require.NoError(t, service.Delete(created.ID))

	_, err = service.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, service.Delete(created.ID), ErrNotFound)
}

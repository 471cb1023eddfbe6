package catalogrepo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/diesel-reports/internal/domain/catalog"
)

func TestMemoryRepositoryOrdering(t *testing.T) {
	repo := NewMemoryRepository()
	repo.AddCity(catalog.City{ID: 2, Code: "MTY", Description: "Monterrey"})
	repo.AddCity(catalog.City{ID: 1, Code: "GDL", Description: "Guadalajara"})
	repo.AddTank(catalog.Tank{ID: 5, Name: "Sur", CityCode: "MTY"})
	repo.AddTank(catalog.Tank{ID: 4, Name: "Norte", CityCode: "MTY"})
	repo.AddTank(catalog.Tank{ID: 9, Name: "Centro", CityCode: "GDL"})

	cities, err := repo.ListCities(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"GDL", "MTY"}, []string{cities[0].Code, cities[1].Code})

	tanks, err := repo.ListTanksByCity(context.Background(), "MTY")
	require.NoError(t, err)
	require.Len(t, tanks, 2)
	require.Equal(t, "Norte", tanks[0].Name)

	none, err := repo.ListTanksByCity(context.Background(), "mty")
	require.NoError(t, err)
	require.Empty(t, none)
}

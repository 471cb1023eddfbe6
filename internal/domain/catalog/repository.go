package catalog

import "context"

// Repository reads the catalog tables of the hosted store.
type Repository interface {
	ListCities(ctx context.Context) ([]City, error)
	ListTanksByCity(ctx context.Context, cityCode string) ([]Tank, error)
}

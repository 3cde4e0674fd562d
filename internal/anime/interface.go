package anime

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Listing
	List(ctx context.Context, input ListAnimesInput) (ListAnimesOutput, error)
	ListAll(ctx context.Context) ([]Anime, error)
	FindByName(ctx context.Context, name string) ([]Anime, error)

	// Anime CRUD
	Detail(ctx context.Context, id int64) (Anime, error)
	Create(ctx context.Context, input CreateAnimeInput) (Anime, error)
	CreateMany(ctx context.Context, inputs []CreateAnimeInput) ([]Anime, error)
	Replace(ctx context.Context, input UpdateAnimeInput) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, refs []IDRef) error
}

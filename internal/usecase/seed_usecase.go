package usecase

import "context"

// SeedResult reports what SeedCatalog inserted.
type SeedResult struct {
	Categories int
	Products   int
	Skipped    bool // The catalog already had data.
}

// SeedUsecase loads the demo catalog into an empty database.
type SeedUsecase interface {
	SeedCatalog(ctx context.Context) (*SeedResult, error)
}

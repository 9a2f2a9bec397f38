package services

import (
	"github.com/kerbaras/librarian/pkg/config"
	"github.com/kerbaras/librarian/pkg/data"
	"github.com/kerbaras/librarian/pkg/sources"
)

// NewLibraryFromConfig wires the demo API source and a fresh in-memory store.
// The returned close function releases the store.
func NewLibraryFromConfig(cfg config.Config) (*Library, func() error, error) {
	repo, err := data.NewDuckDBRepository()
	if err != nil {
		return nil, nil, err
	}
	source := sources.NewFakerAPI(cfg.APIURL, cfg.Timeout)
	policy := cfg.FinePolicy()

	library := NewLibrary(source, repo, LibraryConfig{
		Quantity:    cfg.Quantity,
		FinePolicy:  &policy,
		DefaultUser: cfg.User,
	})
	return library, repo.Close, nil
}

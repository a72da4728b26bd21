package macrostate

// StoreOption mutates StoreConfig when constructing a store.
type StoreOption func(StoreConfig) StoreConfig

// WithDir sets the storage root for the file driver. The directory must
// already exist; it is the build setup step's job to create it.
func WithDir(dir string) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.Dir = dir
		return cfg
	}
}

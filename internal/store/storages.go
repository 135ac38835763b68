package store

// Storages groups the storage backends used by the services.
type Storages struct {
	InputStorage InputStorage
}

// NewStorages builds the storages backed by the local file system.
func NewStorages() *Storages {
	return &Storages{
		InputStorage: NewFileInputStorage(),
	}
}

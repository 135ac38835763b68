package service

import (
	"io"

	"github.com/MKhiriev/meow/internal/logger"
	"github.com/MKhiriev/meow/internal/store"
)

type Services struct {
	FileProcessor FileProcessor
	TestRunner    TestRunner
}

// NewServices wires the services over storages. out receives user-facing
// results printed by the services themselves (the test summary line).
// Each service gets its own child of logger.
func NewServices(storages *store.Storages, out io.Writer, logger *logger.Logger) *Services {
	return &Services{
		FileProcessor: NewFileProcessor(storages.InputStorage, logger.GetChildLogger()),
		TestRunner:    NewTestRunner(out, logger.GetChildLogger()),
	}
}

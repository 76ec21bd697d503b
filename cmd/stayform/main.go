// Command stayform is a structured data entry tool for hotels. It manages
// category-templated documents, a per-document taxonomy extension layer and
// a knowledge-gap backlog, over either an in-memory or a SQLite store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lodgeworks/stayform/internal/adapters/driven/config/file"
	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/memory"
	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/sqlite"
	"github.com/lodgeworks/stayform/internal/adapters/driving/cli"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
	"github.com/lodgeworks/stayform/internal/core/ports/driving"
	"github.com/lodgeworks/stayform/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	docStore, gapStore, cleanup, err := openStores(config)
	if err != nil {
		return err
	}
	defer cleanup()

	documentService := services.NewDocumentService(docStore)
	gapService := services.NewGapService(gapStore)

	extensions := make(map[domain.Category]driving.ExtensionService)
	for category, engine := range services.NewExtensionEngines() {
		extensions[category] = engine
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Document:   documentService,
		Gap:        gapService,
		Extensions: extensions,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		DocumentService: documentService,
		GapService:      gapService,
		Extensions:      extensions,
	})

	return cli.Execute()
}

// openStores picks the storage backend from the "storage.backend" config
// key. The default is the in-memory backend with demo data; "sqlite"
// persists under ~/.stayform/data.
func openStores(config *file.ConfigStore) (driven.DocumentStore, driven.GapStore, func(), error) {
	switch backend := config.GetString("storage.backend"); backend {
	case "sqlite":
		store, err := sqlite.NewStore(config.GetString("storage.data_dir"))
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store.DocumentStore(), store.GapStore(), func() { _ = store.Close() }, nil

	case "", "memory":
		ctx := context.Background()
		docStore := memory.NewDocumentStore()
		gapStore := memory.NewGapStore()
		if err := memory.SeedDocuments(ctx, docStore); err != nil {
			return nil, nil, nil, fmt.Errorf("seeding documents: %w", err)
		}
		if err := memory.SeedGaps(ctx, gapStore); err != nil {
			return nil, nil, nil, fmt.Errorf("seeding gaps: %w", err)
		}
		return docStore, gapStore, func() {}, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/diesel-reports/internal/infra/catalogrepo"
	"github.com/yanqian/diesel-reports/internal/infra/reportrepo"
)

func TestQueryClientWithoutPoolWarnsAboutMemoryStore(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	client := provideQueryClient(nil, logger)

	require.IsType(t, &reportrepo.InstrumentedClient{}, client)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "in-memory store")
}

func TestCatalogRepositoryWithoutPoolUsesMemory(t *testing.T) {
	require.IsType(t, &catalogrepo.MemoryRepository{}, provideCatalogRepository(nil))
}

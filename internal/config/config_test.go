package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, Validate(cfg))
	assert.Less(t, cfg.Chunking.MinChunkSize, cfg.Chunking.AvgChunkSize)
	assert.Less(t, cfg.Chunking.AvgChunkSize, cfg.Chunking.MaxChunkSize)
}

func TestLoadConfigUsesDefaultsWhenNoFileExists(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Default().Chunking, cfg.Chunking)
}

func TestLoadConfigReadsFileOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".sdp"), 0o755))

	yaml := []byte("chunking:\n  min_chunk_size: 1024\n  avg_chunk_size: 4096\n  max_chunk_size: 16384\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sdp", "config.yaml"), yaml, 0o644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, uint32(1024), cfg.Chunking.MinChunkSize)
	assert.Equal(t, uint32(4096), cfg.Chunking.AvgChunkSize)
	assert.Equal(t, uint32(16384), cfg.Chunking.MaxChunkSize)
}

func TestLoadConfigEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".sdp"), 0o755))

	yaml := []byte("chunking:\n  min_chunk_size: 1024\n  avg_chunk_size: 4096\n  max_chunk_size: 16384\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".sdp", "config.yaml"), yaml, 0o644))

	t.Setenv("SDP_CHUNKING_MIN_CHUNK_SIZE", "2048")

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, uint32(2048), cfg.Chunking.MinChunkSize)
}

func TestValidateRejectsNonIncreasingChunkSizes(t *testing.T) {
	cfg := Default()
	cfg.Chunking.AvgChunkSize = cfg.Chunking.MinChunkSize

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestValidateRejectsZeroMinChunkSize(t *testing.T) {
	cfg := Default()
	cfg.Chunking.MinChunkSize = 0

	err := Validate(cfg)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

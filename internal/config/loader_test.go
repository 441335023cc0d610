package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{}, // no config file
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Agent.Model)
	assert.Equal(t, 15, cfg.Agent.MaxIterations)
	assert.Equal(t, DefaultBaseURL, cfg.PNCP.BaseURL)
	assert.Equal(t, 5, cfg.PNCP.MaxPages)
}

func TestLoad_PartialOverride_KeepsOtherDefaults(t *testing.T) {
	configJSON := `{
		"agent": {"model": "gemini-2.5-pro", "max_iterations": 20},
		"pncp": {"max_pages": 3}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/contratai/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Agent.Model)
	assert.Equal(t, 20, cfg.Agent.MaxIterations)
	assert.Equal(t, 3, cfg.PNCP.MaxPages)

	// Untouched keys stay at their defaults
	assert.Equal(t, float32(0.7), cfg.Agent.Temperature)
	assert.Equal(t, int32(2000), cfg.Agent.MaxTokens)
	assert.Equal(t, DefaultBaseURL, cfg.PNCP.BaseURL)
	assert.Equal(t, 30, cfg.PNCP.TimeoutSeconds)
}

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/contratai/config.json": []byte("{not json"),
		},
	}
	loader := NewLoaderWithFS(fs)

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoad_PermissionError_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: errors.New("permission denied"),
	}
	loader := NewLoaderWithFS(fs)

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoad_NoHomeDir_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("no home"),
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Agent.Model)
}

func TestLoad_InvalidValues_FailValidation(t *testing.T) {
	configJSON := `{"agent": {"temperature": 5.0}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/home/user/.config/contratai/config.json": []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	_, err := loader.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "temperature")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	content := `{
		"port": 9090,
		"max_upload_bytes": 1048576,
		"min_job_description_length": 80,
		"top_keywords": 40,
		"cors_allowed_origin": "https://example.com",
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
	assert.Equal(t, 80, cfg.MinJobDescriptionLength)
	assert.Equal(t, 40, cfg.TopKeywords)
	assert.Equal(t, "https://example.com", cfg.CORSAllowedOrigin)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte("{not json"), 0o644))

	cfg, err := LoadConfig(configPath)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{Port: 8080, TopKeywords: 30}},
		{name: "port out of range", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative upload size", cfg: Config{MaxUploadBytes: -1}, wantErr: "max_upload_bytes"},
		{name: "negative minimum length", cfg: Config{MinJobDescriptionLength: -5}, wantErr: "min_job_description_length"},
		{name: "negative keyword count", cfg: Config{TopKeywords: -1}, wantErr: "top_keywords"},
		{name: "missing vocabulary", cfg: Config{VocabularyFile: "/nonexistent/vocab.yaml"}, wantErr: "vocabulary file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvPort: "9191", EnvVocabularyFile: "extra.yaml"}
	cfg := &Config{Port: 8080}

	require.NoError(t, cfg.ApplyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "extra.yaml", cfg.VocabularyFile)

	bad := &Config{}
	err := bad.ApplyEnv(func(k string) string {
		if k == EnvPort {
			return "eighty"
		}
		return ""
	})
	assert.Error(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Port:           9000,
		TopKeywords:    25,
		VocabularyFile: "vocab.yaml",
	}

	partial := Config{
		MinJobDescriptionLength: 100,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, 100, merged.MinJobDescriptionLength)

	// Default values should fill in empty fields
	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, 25, merged.TopKeywords)
	assert.Equal(t, "vocab.yaml", merged.VocabularyFile)
	assert.Equal(t, int64(DefaultMaxUploadBytes), merged.MaxUploadBytes)
	assert.Equal(t, DefaultCORSAllowedOrigin, merged.CORSAllowedOrigin)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultPort, merged.Port)
	assert.Equal(t, DefaultTopKeywords, merged.TopKeywords)
	assert.Equal(t, DefaultMinJobDescriptionLength, merged.MinJobDescriptionLength)
	assert.Empty(t, merged.VocabularyFile)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "pure", cfg.PDFBackend)
	assert.Equal(t, "prose", cfg.NERProvider)
	assert.Equal(t, "dslim/bert-base-NER", cfg.NERModel)
	assert.Equal(t, 30*time.Second, cfg.NERTimeout)
	assert.False(t, cfg.StrictPhones)
	assert.Equal(t, "US", cfg.PhoneRegion)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"HOST":          "127.0.0.1",
		"PORT":          "9000",
		"PDF_BACKEND":   "fitz",
		"NER_PROVIDER":  "huggingface",
		"HF_API_TOKEN":  "hf_token",
		"NER_TIMEOUT":   "5s",
		"PHONE_STRICT":  "true",
		"MAX_UPLOAD_MB": "2",
	}))

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, "fitz", cfg.PDFBackend)
	assert.Equal(t, "huggingface", cfg.NERProvider)
	assert.Equal(t, "hf_token", cfg.NERAPIKey)
	assert.Equal(t, 5*time.Second, cfg.NERTimeout)
	assert.True(t, cfg.StrictPhones)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"NER_TIMEOUT":   "soon",
		"PHONE_STRICT":  "maybe",
		"MAX_UPLOAD_MB": "-1",
	}))

	assert.Equal(t, 30*time.Second, cfg.NERTimeout)
	assert.False(t, cfg.StrictPhones)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestDefaultCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)

	assert.Len(t, c.Skills, 21)
	assert.Contains(t, c.Skills, "node.js")
	require.Len(t, c.Employers, 3)
	assert.Equal(t, "Amazon", c.Employers[2].Name)
	assert.Equal(t, []string{"Node.js", "Express.js", "AWS"}, c.Employers[2].RequiredSkills)
	require.Len(t, c.DashboardEmployers, 5)
	assert.Equal(t, 5, c.DashboardEmployers[4].MinExperience)
}

func TestLoadCatalogFromFile(t *testing.T) {
	content := `
skills: [go, rust]
employers:
  - name: Gophers Inc
    required_skills: [go, sql]
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, c.Skills)
	assert.Equal(t, "Gophers Inc", c.Employers[0].Name)
	assert.Empty(t, c.DashboardEmployers)
}

func TestParseCatalogValidation(t *testing.T) {
	tests := map[string]string{
		"no skills":        `employers: []`,
		"unnamed employer": "skills: [go]\nemployers:\n  - required_skills: [go]",
		"no requirements":  "skills: [go]\nemployers:\n  - name: Empty",
		"negative years":   "skills: [go]\ndashboard_employers:\n  - name: X\n    required_skills: [go]\n    min_experience: -1",
		"bad yaml":         "skills: [go",
		"duplicate skill":  "skills: [aws]\nemployers:\n  - name: Amazon\n    required_skills: [aws, AWS]",
		"blank skill":      "skills: [aws]\nemployers:\n  - name: Amazon\n    required_skills: [aws, \" \"]",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
		assert.Error(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.Port)
	})

	t.Run("file values", func(t *testing.T) {
		if _, set := os.LookupEnv("NER_MODEL"); set {
			t.Skip("NER_MODEL is set in the environment; .env never overrides it")
		}
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("NER_MODEL=custom/model\n"), 0o600))
		t.Cleanup(func() { os.Unsetenv("NER_MODEL") })

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "custom/model", cfg.NERModel)
	})
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read catalog")
}

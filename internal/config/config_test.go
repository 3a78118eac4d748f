package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Load_FillsMissingFieldsFromDefault(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "spectra.toml")
	assert.NoError(os.WriteFile(path, []byte(`output_width = 120`), 0644))

	cfg, err := Load(path)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(120, cfg.OutputWidth)
	assert.Equal(Default().RuleLibraryFile, cfg.RuleLibraryFile)
	assert.Equal(Default().KeySeparator, cfg.KeySeparator)
}

func Test_Load_MissingFileReturnsError(t *testing.T) {
	assert := assert.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(err)
}

func Test_Validate_RejectsNonPositiveWidth(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	cfg.OutputWidth = 0
	assert.ErrorIs(cfg.Validate(), ErrInvalidOutputWidth)
}

func Test_Validate_AcceptsDefaults(t *testing.T) {
	assert.New(t).NoError(Default().Validate())
}

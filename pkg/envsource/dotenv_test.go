package envsource

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotenvSource(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, ioutil.WriteFile(file, []byte("GITHUB_USERNAME=alice\nGITHUB_PAT=tok123\n"), 0600))

	source, err := NewDotenvSource(file)
	assert.NoError(t, err)

	value, err := source.Get("GITHUB_PAT")
	assert.NoError(t, err)
	assert.Equal(t, "tok123", value)

	keys, err := source.Keys()
	assert.NoError(t, err)
	assert.Equal(t, []string{"GITHUB_PAT", "GITHUB_USERNAME"}, keys)

	_, err = source.Get("NOPE")
	assert.True(t, IsNotFound(err))
}

func TestDotenvSourceMissingFile(t *testing.T) {
	_, err := NewDotenvSource(filepath.Join(t.TempDir(), ".env"))
	assert.True(t, os.IsNotExist(err))
}

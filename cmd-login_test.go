package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestWriteCredentialsCreatesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, writeCredentials(file, "alice", "tok123"))

	env, err := godotenv.Read(file)
	assert.NoError(t, err)
	assert.Equal(t, "alice", env[varGithubUsername])
	assert.Equal(t, "tok123", env[varGithubPat])
}

func TestWriteCredentialsKeepsUnrelatedKeys(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, ioutil.WriteFile(file, []byte("OTHER=keepme\nGITHUB_PAT=stale\n"), 0600))
	assert.NoError(t, writeCredentials(file, "alice", "tok123"))

	env, err := godotenv.Read(file)
	assert.NoError(t, err)
	assert.Equal(t, "keepme", env["OTHER"])
	assert.Equal(t, "alice", env[varGithubUsername])
	assert.Equal(t, "tok123", env[varGithubPat], "stale token must be overwritten")
}

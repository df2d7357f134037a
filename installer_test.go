package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunInstallerIndentsChildOutput(t *testing.T) {
	dir := t.TempDir()
	installer := writeScript(t, dir, "fake-pip", "#!/bin/sh\necho \"installing from $3\"\n")
	stdout := bytes.NewBuffer(nil)

	err := runInstaller(installer, "requirements_temp.txt", nil, stdout, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "  installing from requirements_temp.txt\n", stdout.String())
}

func TestRunInstallerPassesExtraArgs(t *testing.T) {
	dir := t.TempDir()
	installer := writeScript(t, dir, "fake-pip", "#!/bin/sh\necho \"$@\"\n")
	stdout := bytes.NewBuffer(nil)

	err := runInstaller(installer, "reqs.txt", []string{"--no-cache-dir"}, stdout, ioutil.Discard)
	assert.NoError(t, err)
	assert.Equal(t, "  install -r reqs.txt --no-cache-dir\n", stdout.String())
}

func TestRunInstallerMissingExecutable(t *testing.T) {
	err := runInstaller(filepath.Join(t.TempDir(), "no-such-installer"), "reqs.txt", nil, ioutil.Discard, ioutil.Discard)
	assert.Error(t, err)
	var failed InstallationFailedError
	assert.False(t, errors.As(err, &failed), "failing to start the installer is not an installation failure")
}

package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path"
	"runtime"
	"testing"

	"github.com/BTBurke/snapshot"
	"github.com/segmentio/textio"
	"github.com/stretchr/testify/assert"
)

// Each fixture directory holds a run.sh plus its inputs (requirements.txt,
// .env, a fake installer) and the expected combined output as a snapshot.
// run.sh finds the freshly built binary via PATH.
func TestFixtures(t *testing.T) {
	fixtures, err := ioutil.ReadDir("./fixtures")
	assert.NoError(t, err)
	assert.NotEmpty(t, fixtures, "e2e run without fixtures would silently pass")

	for _, fixture := range fixtures {
		dir := path.Join("./fixtures", fixture.Name())
		t.Run(fixture.Name(), func(t *testing.T) {
			cmd := exec.Command("sh", "run.sh")
			cmd.Dir = dir
			cmd.Env = append(cmd.Env, fmt.Sprintf("PATH=%s:../../../dist/pip-creds_%s_%s", os.Getenv("PATH"), runtime.GOOS, runtime.GOARCH))

			out := bytes.NewBuffer(nil)
			cmd.Stdout = textio.NewPrefixWriter(out, "stdout: ")
			cmd.Stderr = textio.NewPrefixWriter(out, "stderr: ")

			snaps, err := snapshot.New(snapshot.SnapDirectory(dir), snapshot.ContextLines(2))
			assert.NoError(t, err)
			assert.NoError(t, cmd.Run())
			snaps.Assert(t, out.Bytes())
		})
	}
}

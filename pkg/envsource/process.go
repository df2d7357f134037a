package envsource

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

type processSource struct{}

var _ Source = processSource{}

// NewProcessSource reads from the environment of the current process.
func NewProcessSource() Source {
	return processSource{}
}

func (processSource) Get(name string) (string, error) {
	if v, ok := os.LookupEnv(name); ok {
		return v, nil
	}
	return "", errors.Wrapf(ErrNotFound, "%q", name)
}

func (processSource) Keys() ([]string, error) {
	env := os.Environ()
	keys := make([]string, 0, len(env))
	for _, kv := range env {
		keys = append(keys, strings.SplitN(kv, "=", 2)[0])
	}
	sort.Strings(keys)
	return keys, nil
}

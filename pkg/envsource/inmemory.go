package envsource

import (
	"sort"

	"github.com/pkg/errors"
)

type memorySource struct {
	data map[string]string
}

var _ Source = &memorySource{}

// NewInMemorySource creates a handy stand-in for a real environment (for example for mocking)
func NewInMemorySource(keyValues ...string) Source {
	if len(keyValues)%2 != 0 {
		panic("Specify key & values in pairs!")
	}
	data := make(map[string]string, len(keyValues)/2)
	for i := 0; i < len(keyValues); i += 2 {
		data[keyValues[i]] = keyValues[i+1]
	}
	return &memorySource{data: data}
}

func (s *memorySource) Get(name string) (string, error) {
	if v, ok := s.data[name]; ok {
		return v, nil
	}
	return "", errors.Wrapf(ErrNotFound, "%q", name)
}

func (s *memorySource) Keys() ([]string, error) {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

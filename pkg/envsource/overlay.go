package envsource

import (
	"sort"

	"github.com/pkg/errors"
)

type overlaySource []Source

var _ Source = overlaySource{}

// NewOverlaySource combines multiple sources; earlier sources win. The install
// pipeline layers the process environment over the dot-env file, so exported
// variables override the file, like python-decouple does.
func NewOverlaySource(sources ...Source) Source {
	return overlaySource(sources)
}

func (o overlaySource) Get(name string) (string, error) {
	for _, s := range o {
		v, err := s.Get(name)
		if err == nil {
			return v, nil
		}
		if !IsNotFound(err) {
			return "", err
		}
	}
	return "", errors.Wrapf(ErrNotFound, "%q", name)
}

func (o overlaySource) Keys() ([]string, error) {
	seen := make(map[string]bool)
	var keys []string
	for _, s := range o {
		names, err := s.Keys()
		if err != nil {
			return nil, err
		}
		for _, k := range names {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}

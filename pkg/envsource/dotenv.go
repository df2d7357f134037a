package envsource

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// NewDotenvSource returns a Source backed by a dot-env format file
func NewDotenvSource(file string) (Source, error) {
	fileReader, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()
	env, err := godotenv.Parse(fileReader)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", file)
	}
	var flatList []string
	for k, v := range env {
		flatList = append(flatList, k, v)
	}
	return NewInMemorySource(flatList...), nil
}

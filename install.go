package main

import (
	"errors"
	"io/ioutil"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/Q42/pip-creds/pkg/envsource"
	"github.com/Q42/pip-creds/pkg/multierror"
)

// The credential names the default workflow depends on.
const (
	varGithubUsername = "GITHUB_USERNAME"
	varGithubPat      = "GITHUB_PAT"
)

// openSource builds the credential lookup chain: the process environment
// first, then the dot-env file. A missing dot-env file is tolerated unless the
// operator named one explicitly; the process environment alone may carry
// everything.
func openSource(envFile string, explicit bool) (envsource.Source, error) {
	process := envsource.NewProcessSource()
	dotenv, err := envsource.NewDotenvSource(envFile)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return process, nil
		}
		return nil, err
	}
	return envsource.NewOverlaySource(process, dotenv), nil
}

// checkRequired verifies every required credential is present and non-empty.
// It runs before any file is written or any process is launched.
func checkRequired(source envsource.Source, names []string) error {
	var allErrors error
	for _, name := range names {
		if _, err := lookupCredential(source, name); err != nil {
			allErrors = multierror.MultiAppend(allErrors, err)
		}
	}
	return allErrors
}

// render loads the requirements file and substitutes the credential tokens.
// Placeholder tokens outside names are left alone.
func render(path string, names []string, source envsource.Source) (string, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return "", FileNotFoundError{Path: path}
	}
	if err != nil {
		return "", err
	}
	return substitute(string(data), names, source)
}

// removeBestEffort deletes the rendered file. Failure to delete only warns,
// it never changes the outcome of the run.
func removeBestEffort(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Println(color.YellowString("WARNING: could not remove %s: %s", path, err))
	}
}

// printCredentials shows which values are about to be used, masked.
func printCredentials(source envsource.Source, names []string) {
	masked := envsource.Masked(source)
	for _, name := range names {
		if value, err := masked.Get(name); err == nil {
			log.Printf("Using %s: %s\n", name, value)
		}
	}
}

// printDotenvHint tells the operator how to repair each missing credential.
func printDotenvHint(err error) {
	for _, e := range multierror.List(err) {
		var missing MissingConfigurationError
		if errors.As(e, &missing) {
			log.Println(color.RedString("ERROR: %s is not set in your .env file!", missing.Name))
			log.Println("Please add it to your .env file:")
			log.Printf("  %s=your_%s_here\n", missing.Name, strings.ToLower(missing.Name))
		}
	}
}

package main

import (
	"regexp"
	"strings"

	"github.com/Q42/pip-creds/pkg/envsource"
	"github.com/Q42/pip-creds/pkg/multierror"
)

// rePlaceholder matches ${NAME} tokens embedded in otherwise opaque requirement lines.
var rePlaceholder = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// placeholders returns the distinct placeholder names in order of first occurrence.
func placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range rePlaceholder.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// substitute replaces every occurrence of ${NAME} for each of the given
// credential names with the value from source. This is literal text
// replacement, not a templating language: no escaping, no recursion, and
// every other byte passes through untouched, including ${...} tokens that are
// not credentials. When any credential is absent or empty, all problems are
// reported together and no output is produced.
func substitute(text string, names []string, source envsource.Source) (string, error) {
	var allErrors error
	out := text
	for _, name := range names {
		value, err := lookupCredential(source, name)
		if err != nil {
			allErrors = multierror.MultiAppend(allErrors, err)
			continue
		}
		out = strings.ReplaceAll(out, "${"+name+"}", value)
	}
	if allErrors != nil {
		return "", allErrors
	}
	return out, nil
}

// lookupCredential resolves one name, treating empty values the same as absent ones.
func lookupCredential(source envsource.Source, name string) (string, error) {
	value, err := source.Get(name)
	if err != nil && !envsource.IsNotFound(err) {
		return "", err
	}
	if err != nil || value == "" {
		return "", MissingConfigurationError{Name: name}
	}
	return value, nil
}

package main

import "fmt"

// MissingConfigurationError means a required credential is absent or empty.
type MissingConfigurationError struct {
	Name string
}

func (e MissingConfigurationError) Error() string {
	return fmt.Sprintf("%s is not set", e.Name)
}

// FileNotFoundError means the requirements file does not exist.
type FileNotFoundError struct {
	Path string
}

func (e FileNotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Path)
}

// InstallationFailedError means the package installer exited non-zero.
type InstallationFailedError struct {
	ExitStatus int
}

func (e InstallationFailedError) Error() string {
	return fmt.Sprintf("installer exited with status %d", e.ExitStatus)
}

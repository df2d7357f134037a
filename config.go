package main

import (
	"io/ioutil"
	"os"
	"strings"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// configFileName is looked up in the working directory by the install command.
const configFileName = ".pip-creds.yaml"

// fileConfig mirrors the keys of .pip-creds.yaml. All keys are optional and
// explicit command-line flags always win over them.
type fileConfig struct {
	Requirements string   `yaml:"requirements"`
	EnvFile      string   `yaml:"envFile"`
	Installer    string   `yaml:"installer"`
	TempFile     string   `yaml:"tempFile"`
	Require      []string `yaml:"require"`
}

// loadConfigFile reads .pip-creds.yaml if present. A missing file is fine.
func loadConfigFile() (fileConfig, error) {
	data, err := ioutil.ReadFile(configFileName)
	if os.IsNotExist(err) {
		return fileConfig{}, nil
	}
	if err != nil {
		return fileConfig{}, err
	}
	return parseConfigFileData(data)
}

func parseConfigFileData(data []byte) (fileConfig, error) {
	var conf fileConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return fileConfig{}, errors.Wrapf(err, "could not parse %s", configFileName)
	}
	for _, name := range conf.Require {
		if errs := validation.IsEnvVarName(name); len(errs) != 0 {
			return fileConfig{}, errors.Errorf("invalid name %q in %s: %s", name, configFileName, strings.Join(errs, ", "))
		}
	}
	return conf, nil
}

// mergeCommandOptions copies config file values into options that are still at
// their flag default, so explicit command-line flags always win.
func (opts *InstallCommand) mergeCommandOptions(cmd *flags.Command, conf fileConfig) {
	if conf.Requirements != "" && cmd.FindOptionByLongName("requirements").IsSetDefault() {
		opts.Requirements = conf.Requirements
	}
	if conf.EnvFile != "" && cmd.FindOptionByLongName("env-file").IsSetDefault() {
		opts.EnvFile = conf.EnvFile
	}
	if conf.Installer != "" && cmd.FindOptionByLongName("installer").IsSetDefault() {
		opts.Installer = conf.Installer
	}
	if conf.TempFile != "" && cmd.FindOptionByLongName("temp-file").IsSetDefault() {
		opts.TempFile = conf.TempFile
	}
	if len(conf.Require) != 0 && cmd.FindOptionByLongName("require").IsSetDefault() {
		opts.Require = conf.Require
	}
}

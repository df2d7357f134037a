package main

import (
	"io/ioutil"
	"os"

	"github.com/fatih/color"
	flags "github.com/jessevdk/go-flags"

	"github.com/Q42/pip-creds/pkg/multierror"
)

var checkDescription = `Check lists every placeholder token in the requirements file and whether the current environment resolves it.`

var checkCommand *flags.Command

func init() {
	var err error
	checkCommand, err = parser.AddCommand("check", checkDescription, checkDescription, &CheckCommand{})
	panicIfErr(err)
}

// CheckCommand describes how to use the check command
type CheckCommand struct {
	Requirements string `short:"r" long:"requirements" default:"requirements.txt" description:"Requirements file containing ${...} placeholder tokens"`
	EnvFile      string `long:"env-file" default:".env" description:"Dot-env file holding the credentials"`
}

// Execute of CheckCommand is the 'pip-creds check' command
func (opts *CheckCommand) Execute(args []string) error {
	explicit := !checkCommand.FindOptionByLongName("env-file").IsSetDefault()
	source, err := openSource(opts.EnvFile, explicit)
	if err != nil {
		return err
	}

	data, err := ioutil.ReadFile(opts.Requirements)
	if os.IsNotExist(err) {
		return FileNotFoundError{Path: opts.Requirements}
	}
	if err != nil {
		return err
	}

	names := placeholders(string(data))
	if len(names) == 0 {
		log.Printf("No placeholder tokens in %s\n", opts.Requirements)
		return nil
	}

	var allErrors error
	for idx, name := range names {
		if _, err := lookupCredential(source, name); err != nil {
			allErrors = multierror.MultiAppend(allErrors, err)
			log.Printf("%d:\t%s (%s)\n", idx, color.CyanString(name), color.RedString("missing"))
		} else {
			log.Printf("%d:\t%s (%s)\n", idx, color.CyanString(name), color.GreenString("ok"))
		}
	}
	return allErrors
}

package main

import (
	"io/ioutil"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/Q42/pip-creds/pkg/envsource"
)

var renderDescription = `Render prints the requirements file with all credential placeholders substituted.`
var renderDescriptionLong = `Render prints the requirements file with all credential placeholders substituted.

By default the rendered text goes to stdout with the secret values masked, so
it is safe to eyeball in a terminal or paste into an issue. Use --reveal to
print real values, or --output to write a fully rendered file to disk.
`

var renderCommand *flags.Command

func init() {
	var err error
	renderCommand, err = parser.AddCommand("render", renderDescription, renderDescriptionLong, &RenderCommand{})
	panicIfErr(err)
}

// RenderCommand describes how to use the render command
type RenderCommand struct {
	Requirements string   `short:"r" long:"requirements" default:"requirements.txt" description:"Requirements file containing ${...} placeholder tokens"`
	EnvFile      string   `long:"env-file" default:".env" description:"Dot-env file holding the credentials"`
	Output       string   `short:"o" long:"output" default:"-" description:"Destination file, '-' prints to stdout"`
	Reveal       bool     `long:"reveal" description:"Print real secret values instead of masked ones"`
	Require      []string `long:"require" default:"GITHUB_USERNAME" default:"GITHUB_PAT" description:"Credential names to substitute"`
}

// Execute of RenderCommand is the 'pip-creds render' command
func (opts *RenderCommand) Execute(args []string) error {
	explicit := !renderCommand.FindOptionByLongName("env-file").IsSetDefault()
	source, err := openSource(opts.EnvFile, explicit)
	if err != nil {
		return err
	}
	if opts.Output == "-" && !opts.Reveal {
		source = envsource.Masked(source)
	}

	rendered, err := render(opts.Requirements, opts.Require, source)
	if err != nil {
		return err
	}

	if opts.Output == "-" {
		_, err = os.Stdout.WriteString(rendered)
		return err
	}
	return ioutil.WriteFile(opts.Output, []byte(rendered), 0600)
}

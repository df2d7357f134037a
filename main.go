package main

import (
	loglib "log"
	"os"

	"github.com/fatih/color"
	"github.com/go-errors/errors"
	flags "github.com/jessevdk/go-flags"
)

var log *loglib.Logger = loglib.New(os.Stderr, "", 0)

// parser holds all subcommands; each cmd-*.go file registers itself in init()
var parser = flags.NewParser(nil, flags.Default)

func main() {
	defer func() {
		// Catch any panic errors down the line
		if r := recover(); r != nil {
			err := errors.New(r)
			log.Println(color.RedString("ERROR: %s", err))
			log.Println(err.ErrorStack())
			os.Exit(1)
		}
	}()

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			// go-flags has printed the parse problem already
			os.Exit(1)
		}
		log.Println(color.RedString("ERROR: %s", err))
		os.Exit(1)
	}
}

// prints stack
func panicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

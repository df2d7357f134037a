package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/Q42/pip-creds/pkg/envsource"
	"github.com/joho/godotenv"
)

var loginDescription = `Login stores the GitHub credentials into the dot-env file from the command-line.`

func init() {
	_, err := parser.AddCommand("login", loginDescription, loginDescription, &loginCommand{})
	panicIfErr(err)
}

type loginCommand struct {
	EnvFile  string `long:"env-file" default:".env" description:"Dot-env file to write the credentials to"`
	Username string `long:"username" description:"GitHub username; prompted for when omitted"`
}

// Execute runs the login command
func (opts *loginCommand) Execute(args []string) error {
	username := opts.Username
	if username == "" {
		fmt.Print("GitHub username: ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		username = strings.Trim(line, "\n\r")
	}

	var token string
	if terminal.IsTerminal(syscall.Stdin) {
		fmt.Print("GitHub personal access token: ")
		byteToken, err := terminal.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return err
		}
		fmt.Println()
		token = string(byteToken)
	} else {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		token = strings.Trim(line, "\n\r")
	}

	if err := writeCredentials(opts.EnvFile, username, token); err != nil {
		return err
	}
	log.Printf("Wrote %s and %s to %s\n", varGithubUsername, varGithubPat, opts.EnvFile)
	log.Printf("Using %s: %s\n", varGithubPat, envsource.Mask(token))
	return nil
}

// writeCredentials upserts the two credentials, keeping unrelated keys intact.
func writeCredentials(file, username, token string) error {
	env, err := godotenv.Read(file)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		env = map[string]string{}
	}
	env[varGithubUsername] = username
	env[varGithubPat] = token
	return godotenv.Write(env, file)
}

package main

import (
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rewinder-dev/rewinder/session"
)

var scriptFile string

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Run a sequence of interpreter commands from a file or standard input",
	Run:   scriptCommand,
}

func init() {
	scriptCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "File containing interpreter commands. If not provided, reads from standard input.")
}

func scriptCommand(cmd *cobra.Command, args []string) {
	var in io.Reader = os.Stdin
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't open script file")
		}
		defer f.Close()
		in = f
	}

	s := session.New(os.Stdout)
	if err := s.RunScript(in); err != nil {
		// Script mode halts with a non-zero exit on the first
		// runtime error.
		log.Error().Err(err).Msg("Script failed")
		os.Exit(1)
	}
}

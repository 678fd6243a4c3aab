package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/gookit/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rewinder-dev/rewinder/session"
)

var shellConfigFile string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Enter interactive shell mode",
	Run:   shellCommand,
}

func init() {
	shellCmd.Flags().StringVar(&shellConfigFile, "config", "", "Optional TOML shell configuration file")
}

func shellCommand(cmd *cobra.Command, args []string) {
	cfg := session.DefaultConfig()
	if shellConfigFile != "" {
		var err error
		cfg, err = session.LoadConfigFromFile(shellConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msg("Couldn't load shell config")
		}
	}
	if cfg.Shell.NoColor {
		color.Disable()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Shell.Prompt,
		HistoryFile: cfg.Shell.HistoryFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Couldn't initialize line editor")
	}
	defer rl.Close()

	fmt.Println(color.Cyan.Sprint("Reversible Stack-Based Interpreter Shell"))
	fmt.Println("Enter commands. Type 'help' for a list of commands. Type 'exit' or press Ctrl+D to quit.")

	s := session.New(os.Stdout)
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				fmt.Println("Interrupted")
			} else if errors.Is(err, io.EOF) {
				fmt.Println("Exiting")
			} else {
				fmt.Println(color.Red.Sprintf("Error: %v", err))
			}
			return
		}

		quit, err := s.Eval(line)
		if err != nil {
			// The shell reports and keeps accepting commands.
			fmt.Println(color.Red.Sprintf("Error: %v", err))
			continue
		}
		if quit {
			return
		}
	}
}

package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/layoutkit/internal/tui/preview"
)

var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview a theme interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return newCommandError("start preview", "checking the terminal", errors.New("stdin and stdout must be a terminal"),
					"Use 'layoutkit tokens' or 'layoutkit render' in scripts.")
			}

			sess, err := openSession(cmd, root, "preview", "start preview", true)
			if err != nil {
				return err
			}
			defer sess.Close() //nolint:errcheck

			program := tea.NewProgram(preview.NewModel(sess.Service, sess.Config), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				sess.Log.Error(err, "preview exited with an error")
				return newCommandError("run preview", "running the terminal UI", err, "Try a larger terminal window.")
			}
			return nil
		},
	}

	return cmd
}

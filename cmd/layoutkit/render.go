package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/showcase"
)

type renderOptions struct {
	outPath  string
	story    string
	document bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the themed showcase as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "", "Write HTML to this file instead of stdout")
	cmd.Flags().StringVar(&opts.story, "story", "theme", "Story to render: theme, stack, inline, cluster, box, box-inverted, sidebar, center")
	cmd.Flags().BoolVar(&opts.document, "document", false, "Wrap the fragment in a standalone HTML document")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions) error {
	var html string
	if opts.story == "theme" {
		sess, err := openSession(cmd, root, "render", "render theme", false)
		if err != nil {
			return err
		}
		defer sess.Close() //nolint:errcheck

		page, result, err := sess.Service.Render(sess.Config)
		if err != nil {
			return newCommandError("render showcase", "resolving theme tokens", err, "Check the theme config.")
		}
		for _, c := range result.Corrections {
			sess.Log.Info("adjusted token for contrast", "token", c.Token, "from", c.From, "to", c.To)
		}
		html = page
	} else {
		fragment, err := showcase.Story(opts.story)
		if err != nil {
			return newCommandError("render showcase", "selecting story", err, fmt.Sprintf("Pick one of: %v", showcase.Stories()))
		}
		html = fragment
	}

	if opts.document {
		html = showcase.Document("layoutkit · "+opts.story, html)
	}

	if opts.outPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), html+"\n")
		return err
	}

	if dir := filepath.Dir(opts.outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newCommandError("render showcase", "creating output directory", err, "Check the output path permissions.")
		}
	}
	if err := os.WriteFile(opts.outPath, []byte(html), 0o644); err != nil {
		return newCommandError("render showcase", "writing "+opts.outPath, err, "Check the output path permissions.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.outPath)
	return nil
}

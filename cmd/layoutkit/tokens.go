package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/layoutkit/internal/tokens"
	"github.com/alexisbeaulieu97/layoutkit/pkg/diff"
)

type tokensOptions struct {
	format   string
	selector string
	diff     bool
}

func newTokensCmd(root *rootFlags) *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the resolved token set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "css", "Output format: css or json")
	cmd.Flags().StringVar(&opts.selector, "selector", ".ui-theme", "Selector wrapping the CSS declarations")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show a CSS diff against the theme saved under the storage key")

	return cmd
}

func runTokens(cmd *cobra.Command, root *rootFlags, opts *tokensOptions) error {
	if opts.format != "css" && opts.format != "json" {
		return newCommandError("print tokens", "choosing output format", fmt.Errorf("unknown format %q", opts.format), "Use --format css or --format json.")
	}

	sess, err := openSession(cmd, root, "tokens", "print tokens", opts.diff)
	if err != nil {
		return err
	}
	defer sess.Close() //nolint:errcheck

	// --diff reads the stored theme before resolving and never persists.
	var saved *tokens.Set
	if opts.diff {
		saved = tokens.Load(sess.store, sess.Config.Storage.Key, sess.Log)
		sess.Config.Storage.Persist = false
	}

	result, err := sess.Service.Tokens(sess.Config)
	if err != nil {
		return newCommandError("print tokens", "resolving theme tokens", err, "Check the theme config.")
	}

	out := cmd.OutOrStdout()
	if opts.diff {
		key := sess.Config.Storage.Key
		if saved.Equal(result.Tokens) {
			fmt.Fprintf(out, "resolved theme matches the theme saved under %s\n", key)
			return nil
		}
		fmt.Fprint(out, diff.Unified(formatCSS(opts.selector, saved), formatCSS(opts.selector, result.Tokens), "saved:"+key, "resolved"))
		return nil
	}

	if opts.format == "json" {
		data, err := json.MarshalIndent(result.Tokens, "", "  ")
		if err != nil {
			return newCommandError("print tokens", "encoding JSON", err, "Report this issue.")
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprint(out, formatCSS(opts.selector, result.Tokens))
	return nil
}

func formatCSS(selector string, set *tokens.Set) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	set.Each(func(name, value string) {
		fmt.Fprintf(&b, "  %s: %s;\n", name, value)
	})
	b.WriteString("}\n")
	return b.String()
}

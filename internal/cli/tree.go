package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scenegen/scenegen/pkg/manifest"
	"github.com/scenegen/scenegen/pkg/treeviz"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	output string // output file path (stdout if empty)
	svg    bool   // render SVG instead of DOT
}

// newTreeCmd creates the tree command, a debug tool that renders a
// manifest's relation tree so authors can check anchors and directions
// before a generation run.
func newTreeCmd() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree <manifest.toml>",
		Short: "Render a manifest's relation tree as DOT or SVG",
		Long: `Tree renders the relation tree described by a manifest.

Examples:
  scenegen tree desk.toml                  # DOT to stdout
  scenegen tree desk.toml --svg -o desk.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTree(&opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG instead of DOT")

	return cmd
}

func runTree(opts *treeOpts, manifestPath string) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	out := []byte(treeviz.ToDOT(m))
	if opts.svg {
		out, err = treeviz.RenderSVG(string(out))
		if err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	return nil
}

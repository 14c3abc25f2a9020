// Package span implements the "mst" command: read a chain file, build its
// minimum spanning forest and print it.
package span

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanforest/chainfile"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/report"
	"github.com/katalvlaran/spanforest/mst"
	"github.com/katalvlaran/spanforest/network"
)

// NewCmd returns the "mst" command. Flags are bound to v and decoded into cfg
// by the root command before Run is called.
func NewCmd(cfg *config.Config, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst [FILE]",
		Short: "compute the minimum spanning tree (or forest) of a chain file",
		Long: "Each input line is a chain v1,v2,w[,v3,w3...]: every (vertex, weight) pair adds an " +
			"edge from the previous vertex. Reads stdin when FILE is omitted or \"-\".",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 1 {
				cfg.Input.Path = args[0]
			}
			if err := Run(cfg, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Fatal().Err(err).Msg("")
			}
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", cfg.Input.Path, "chain file to read, - for stdin")
	flags.String("delimiter", string(cfg.Input.Delimiter), "field delimiter (single character)")
	flags.String("comment", string(cfg.Input.Comment), "comment character, empty to disable")
	flags.Bool("trim-space", cfg.Input.TrimSpace, "trim spaces around fields")
	flags.String("method", cfg.Build.Method,
		fmt.Sprintf("algorithm [%s|%s]", mst.MethodKruskal, mst.MethodPrim))
	flags.String("ordering", cfg.Build.Ordering, "kruskal edge ordering [sort|heap]")
	flags.String("root", cfg.Build.Root, "prim start vertex label (default: first vertex read)")
	flags.Bool("require-connected", cfg.Build.RequireConnected, "fail when the graph is disconnected")
	flags.StringP("format", "o", cfg.Output.Format, fmt.Sprintf("output format %v", report.Formats))

	for key, name := range map[string]string{
		"input.path":              "input",
		"input.delimiter":         "delimiter",
		"input.comment":           "comment",
		"input.trim_space":        "trim-space",
		"build.method":            "method",
		"build.ordering":          "ordering",
		"build.root":              "root",
		"build.require_connected": "require-connected",
		"output.format":           "format",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			log.Fatal().Err(err).Msg("fatal")
		}
	}

	return cmd
}

// Run reads the configured input, computes the forest and writes the report.
func Run(cfg *config.Config, stdin io.Reader, stdout io.Writer) error {
	n, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg.Build, n)
	if err != nil {
		return err
	}
	forest, err := n.SpanningForest(opts...)
	if err != nil {
		return err
	}

	log.Info().
		Int("vertices", n.VertexCount()).
		Int("edges", n.EdgeCount()).
		Int("accepted", len(forest.Edges)).
		Int("components", forest.Components).
		Int64("total", forest.Total).
		Msg("spanning forest computed")
	if forest.Components > 1 {
		log.Warn().Int("components", forest.Components).Msg("graph is disconnected, result is a spanning forest")
	}

	return report.Write(stdout, cfg.Output.Format, forest)
}

func readInput(in config.InputConfig, stdin io.Reader) (*network.Network, error) {
	opts := []chainfile.Option{
		chainfile.WithDelimiter(in.Delimiter),
		chainfile.WithComment(in.Comment),
		chainfile.WithTrimSpace(in.TrimSpace),
		chainfile.WithLogger(log.Logger),
	}
	if in.Path == "" || in.Path == "-" {
		return chainfile.Read(stdin, opts...)
	}
	return chainfile.ReadFile(in.Path, opts...)
}

func buildOptions(b config.BuildConfig, n *network.Network) ([]mst.Option, error) {
	ordering, err := mst.ParseOrdering(b.Ordering)
	if err != nil {
		return nil, err
	}
	opts := []mst.Option{
		mst.WithMethod(b.Method),
		mst.WithOrdering(ordering),
		mst.WithLogger(log.Logger),
	}
	if b.RequireConnected {
		opts = append(opts, mst.WithRequireConnected())
	}
	if b.Root != "" {
		root, ok := n.Registry().Index(b.Root)
		if !ok {
			return nil, fmt.Errorf("%w: %q", mst.ErrInvalidRoot, b.Root)
		}
		opts = append(opts, mst.WithRoot(root))
	}

	return opts, nil
}

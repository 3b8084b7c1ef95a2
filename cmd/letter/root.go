package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordmorph/internal/config"
	"github.com/katalvlaran/wordmorph/internal/logging"
	"github.com/katalvlaran/wordmorph/internal/metrics"
	"github.com/katalvlaran/wordmorph/lexicon"
	"github.com/katalvlaran/wordmorph/morph"
	"github.com/katalvlaran/wordmorph/render"
)

var (
	errBeginNotFound = errors.New("begin word not found in dictionary")
	errEndNotFound   = errors.New("end word not found in dictionary")
)

const longHelp = `letter reads a dictionary and prints a morph from the begin word to the
end word, where each step changes, inserts, deletes or swaps one letter.

The dictionary starts with a type line (S for simple, C for complex) and a
word count. Complex dictionaries may use the directives & (reversal),
[xyz] (insert each letter), ! (swap the two preceding letters) and ? (double
the preceding letter). Lines that are blank or start with // are ignored.

Exactly one of --stack or --queue is required, along with --begin, --end
and at least one of --change, --length or --swap.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "letter",
		Short:         "Find a morph between two dictionary words",
		Long:          longHelp,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	config.RegisterFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, _ := logging.WithRun(logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat))
	logger.Debug("starting", "begin", cfg.Begin, "end", cfg.End,
		"discipline", cfg.Discipline().String(), "operations", cfg.Operations().String())

	ro, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	in, closeIn, err := openDict(cmd, cfg.DictPath)
	if err != nil {
		return err
	}
	defer closeIn()

	vocab, err := lexicon.Read(in, lexicon.WithLogger(logging.WithComponent(logger, "lexicon")))
	if err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}
	if !vocab.Has(cfg.Begin) {
		return errBeginNotFound
	}
	if !vocab.Has(cfg.End) {
		return errEndNotFound
	}

	m := metrics.New()
	m.ObserveVocabulary(vocab.Len())

	res, err := morph.Search(vocab, cfg.Begin, cfg.End,
		morph.WithContext(cmd.Context()),
		morph.WithDiscipline(cfg.Discipline()),
		morph.WithOperations(cfg.Operations()),
		morph.WithEditTracking(ro.NeedsEdits()),
		morph.WithLogger(logging.WithComponent(logger, "morph")),
		morph.WithOnExpand(func(_ int, neighbors []int) {
			m.ObserveExpansion(len(neighbors))
		}),
	)
	if err != nil {
		return err
	}
	m.ObserveSearch(res.Discipline.String(), res.Found, res.Discovered(), res.Expanded())
	logger.Info("search complete", "found", res.Found,
		"discovered", res.Discovered(), "expanded", res.Expanded())

	if err := render.Write(cmd.OutOrStdout(), vocab, res, ro); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}

func openDict(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dictionary: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coursecatalog/internal/browser"
	"coursecatalog/internal/config"
	"coursecatalog/internal/logger"
	"coursecatalog/internal/requirement"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	apiURL  string
	timeout time.Duration
	format  string
	verbose bool
}

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msgf("Error loading config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(cfg, log).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse the course catalog by breadth and distribution requirement",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.format {
			case formatText, formatJSON, formatYAML:
				return nil
			default:
				return fmt.Errorf("unknown output format %q", opts.format)
			}
		},
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "api", cfg.APIBaseURL, "catalog API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", time.Duration(cfg.ClientTimeoutSec)*time.Second, "HTTP timeout per request")
	root.PersistentFlags().StringVarP(&opts.format, "format", "o", formatText, "output format: text|json|yaml")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log load progress")

	load := func(cmd *cobra.Command) *browser.Browser {
		l := log.Level(zerolog.WarnLevel)
		if opts.verbose {
			l = log.Level(zerolog.DebugLevel)
		}
		client := browser.NewClient(opts.apiURL, opts.timeout, l)
		b := browser.New(client, l)
		b.Load(cmd.Context())
		return b
	}

	root.AddCommand(
		newRequirementCmd(requirement.KindBreadth, "List breadth requirements, or the courses satisfying KEY", opts, load),
		newRequirementCmd(requirement.KindDistribution, "List distribution requirements, or the courses satisfying KEY", opts, load),
		newOfferingsCmd(opts, load),
	)
	return root
}

func newRequirementCmd(kind requirement.Kind, short string, opts *options, load func(*cobra.Command) *browser.Browser) *cobra.Command {
	return &cobra.Command{
		Use:   string(kind) + " [KEY]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := load(cmd)
			if err := b.SelectTab(kind); err != nil {
				return err
			}
			state := b.Snapshot()
			if state.CoursesStatus() != browser.Loaded {
				return fmt.Errorf("loading courses: %w", state.CoursesError)
			}

			if len(args) == 0 {
				return renderCategories(cmd.OutOrStdout(), opts.format, state.Keys(kind), state.Index(kind))
			}

			key := args[0]
			if _, ok := state.Index(kind).Lookup(key); !ok {
				return fmt.Errorf("%w: %s requirement %q", requirement.ErrCategoryNotFound, kind, key)
			}
			results, err := b.Search(kind, key)
			if err != nil {
				return err
			}
			return renderCourses(cmd.OutOrStdout(), opts.format, results)
		},
	}
}

func newOfferingsCmd(opts *options, load func(*cobra.Command) *browser.Browser) *cobra.Command {
	return &cobra.Command{
		Use:   "offerings",
		Short: "List timetable offerings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := load(cmd).Snapshot()
			if state.OfferingsStatus() != browser.Loaded {
				return fmt.Errorf("loading offerings: %w", state.OfferingsError)
			}
			return renderOfferings(cmd.OutOrStdout(), opts.format, state.Offerings)
		},
	}
}

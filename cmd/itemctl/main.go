package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"

	"github.com/osse101/ItemBuilder_Go/internal/color"
	"github.com/osse101/ItemBuilder_Go/internal/config"
	"github.com/osse101/ItemBuilder_Go/internal/domain"
	"github.com/osse101/ItemBuilder_Go/internal/item"
	"github.com/osse101/ItemBuilder_Go/internal/logger"
	"github.com/osse101/ItemBuilder_Go/internal/naming"
	"github.com/osse101/ItemBuilder_Go/internal/utils"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

type options struct {
	template     string
	out          string
	dump         bool
	validateOnly bool
	silent       bool
	listKinds    bool
	showVersion  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version)
		return exitOK
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitError
	}
	if opts.silent {
		cfg.FailSilently = true
	}

	log := initLogger(cfg, stderr)
	ctx = logger.WithTraceID(ctx, logger.GenerateTraceID())

	if opts.listKinds {
		if err := listKinds(cfg, stdout); err != nil {
			log.Error("Failed to list item kinds", "error", err)
			return exitError
		}
		return exitOK
	}

	if err := buildTemplate(ctx, cfg, opts, stdout); err != nil {
		log.Error("Item template failed", "template", opts.template, "error", err)
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("itemctl", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.template, "template", "", "item template file (.json or .hcl)")
	fs.StringVar(&opts.out, "out", "", "write built items to this JSON file instead of stdout")
	fs.BoolVar(&opts.dump, "dump", false, "print a Go value dump instead of JSON")
	fs.BoolVar(&opts.validateOnly, "validate", false, "validate the template without building it")
	fs.BoolVar(&opts.silent, "silent", false, "ignore invalid builder calls instead of failing")
	fs.BoolVar(&opts.listKinds, "kinds", false, "list known item kinds with their display names")
	fs.BoolVar(&opts.showVersion, "version", false, "print the version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.template == "" && !opts.showVersion && !opts.listKinds {
		fmt.Fprintln(stderr, "itemctl: -template is required")
		fs.Usage()
		return nil, errUsage
	}
	return opts, nil
}

func buildTemplate(ctx context.Context, cfg *config.Config, opts *options, stdout io.Writer) error {
	resolver, err := naming.NewResolver(cfg.AliasesPath)
	if err != nil {
		return err
	}

	translator, err := color.NewTranslator(cfg.ColorCacheSize)
	if err != nil {
		return err
	}

	loader := item.NewLoader(resolver,
		item.WithFailSilently(cfg.FailSilently),
		item.WithTranslator(translator),
		item.WithReporter(item.NewLogReporter(logger.FromContext(ctx).With("template", opts.template))),
	)

	template, err := loader.Load(opts.template)
	if err != nil {
		return err
	}

	if opts.validateOnly {
		if err := loader.Validate(template); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s: %d items OK\n", opts.template, len(template.Items))
		return nil
	}

	built, err := loader.BuildAll(ctx, template)
	if err != nil {
		return err
	}

	switch {
	case opts.dump:
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		dumper.Fdump(stdout, built)
		return nil
	case opts.out != "":
		return utils.SaveJSON(opts.out, built)
	default:
		return utils.WriteJSON(stdout, built)
	}
}

func listKinds(cfg *config.Config, stdout io.Writer) error {
	resolver, err := naming.NewResolver(cfg.AliasesPath)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, kind := range domain.Kinds() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, domain.MetaKindFor(kind), resolver.DisplayName(kind))
	}
	return w.Flush()
}

// Package cli implements the atomlevels command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/atomlevels/internal/config"
	"github.com/katalvlaran/atomlevels/term"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one invocation. It is filled
// in by the root PersistentPreRunE.
type app struct {
	ctx    context.Context
	cfg    config.Config
	log    *slog.Logger
	engine *term.Engine
	st     styles
	start  time.Time
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"log_level":              "log-level",
	"log_format":             "log-format",
	"cache_size":             "cache-size",
	"relativistic":           "relativistic",
	"color":                  "color",
	"excite.min_excitations": "min",
	"excite.max_excitations": "max",
	"excite.keep_parity":     "keep-parity",
}

// NewRootCommand builds the atomlevels command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "atomlevels",
		Short: "Electron configurations and the term symbols they give rise to",
		Long: `atomlevels enumerates the LS terms (or jj J values) of atomic electron
configurations, their seniority-labelled subshell terms and coupling chains,
excited configurations and spin configurations.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.finish,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .atomlevels.toml in . or $HOME)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Int("cache-size", 0, "bound the term multiplicity cache (0 = unbounded)")
	pf.BoolP("relativistic", "r", false, "treat configurations as jj-coupled")
	pf.Bool("color", true, "colorize output")

	root.AddCommand(
		a.jobCommand(config.JobTerms, "terms <configuration>", "List the terms of a configuration"),
		a.jobCommand(config.JobIntermediate, "intermediate <configuration>", "List each subshell's terms with seniority"),
		a.jobCommand(config.JobCouplings, "couplings <configuration>", "List every coupling chain of a configuration"),
		a.exciteCommand(),
		a.jobCommand(config.JobSpin, "spin <configuration>", "List the spin configurations of a configuration"),
		a.batchCommand(),
	)
	return root
}

// Execute runs the CLI until it finishes or is interrupted and returns the
// process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("config")
	v, err := config.New(file)
	if err != nil {
		return err
	}
	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding --%s: %w", name, err)
			}
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.ctx = cmd.Context()
	if a.ctx == nil {
		a.ctx = context.Background()
	}
	a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	var opts []term.Option
	if cfg.CacheSize > 0 {
		opts = append(opts, term.WithCacheSize(cfg.CacheSize))
	}
	a.engine = term.NewEngine(opts...)
	a.st = newStyles(cmd.OutOrStdout(), cfg.Color)
	a.start = time.Now()
	a.log.Debug("command start", "command", cmd.Name(), "args", args, "config_file", v.ConfigFileUsed())
	return nil
}

func (a *app) finish(cmd *cobra.Command, _ []string) {
	a.log.Debug("command done",
		"command", cmd.Name(),
		"elapsed", time.Since(a.start),
		"memoized", a.engine.CacheLen())
}

// jobCommand builds a single-configuration command.
func (a *app) jobCommand(name, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := config.Job{Command: name, Configuration: args[0]}
			return a.run(cmd.OutOrStdout(), job, a.cfg.Excite)
		},
	}
}

func (a *app) exciteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excite <configuration>",
		Short: "List the configurations reachable by exciting electrons into --to",
		Example: `  atomlevels excite 1s2 --to 2s,2p
  atomlevels excite 3d2 --to "4[s,p]" --to 5s
  atomlevels excite "[Ne] 3s2" --to "3[p-d]" --max 1 --keep-parity=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals, err := cmd.Flags().GetStringArray("to")
			if err != nil {
				return err
			}
			to := splitTargets(vals)
			job := config.Job{Command: config.JobExcite, Configuration: args[0], To: to}
			return a.run(cmd.OutOrStdout(), job, a.cfg.Excite)
		},
	}
	f := cmd.Flags()
	f.StringArray("to", nil, "target orbitals, e.g. 2s,2p or 3[s,d]; repeatable")
	f.Int("min", 0, "minimum number of excited electrons")
	f.Int("max", 2, "maximum number of excited electrons")
	f.Bool("keep-parity", true, "keep only configurations of the reference parity")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <jobs.toml>",
		Short: "Run the [[job]] tables of a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := config.LoadBatch(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, job := range b.Jobs {
				if i > 0 {
					fmt.Fprintln(w)
				}
				name := job.Name
				if name == "" {
					name = fmt.Sprintf("job %d", i+1)
				}
				fmt.Fprintln(w, a.st.dim.Render("# "+name))
				if err := a.run(w, job, job.ExciteSettings(a.cfg.Excite)); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			a.log.Info("batch done", "jobs", len(b.Jobs), "file", args[0])
			return nil
		},
	}
}

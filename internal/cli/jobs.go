package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/atomlevels/configuration"
	"github.com/katalvlaran/atomlevels/coupling"
	"github.com/katalvlaran/atomlevels/internal/config"
	"github.com/katalvlaran/atomlevels/notation"
	"github.com/katalvlaran/atomlevels/orbital"
	"github.com/katalvlaran/atomlevels/term"
)

// run executes one job and writes its report to w.
func (a *app) run(w io.Writer, job config.Job, excite config.ExciteConfig) error {
	if err := job.Validate(); err != nil {
		return err
	}
	if excite.MinExcitations < 0 || excite.MaxExcitations < 0 {
		return fmt.Errorf("%w: excitations [%d, %d]", config.ErrInvalidConfig, excite.MinExcitations, excite.MaxExcitations)
	}
	rel := job.Relativistic || a.cfg.Relativistic
	a.log.Debug("job start", "command", job.Command, "configuration", job.Configuration, "relativistic", rel)
	var err error
	if rel {
		err = a.runRelativistic(w, job, excite)
	} else {
		err = a.runLS(w, job, excite)
	}
	if err != nil {
		return fmt.Errorf("%s %q: %w", job.Command, job.Configuration, err)
	}
	a.log.Debug("job done", "command", job.Command, "memoized", a.engine.CacheLen())
	return nil
}

func (a *app) runLS(w io.Writer, job config.Job, excite config.ExciteConfig) error {
	c, err := notation.ParseConfiguration(job.Configuration)
	if err != nil {
		return err
	}
	withEngine := coupling.WithEngine(a.engine)
	switch job.Command {
	case config.JobTerms:
		ts, err := coupling.Terms(c, withEngine)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s: %d terms", notation.FormatConfiguration(c), len(ts))
		writeTally(w, a.st, ts, term.Term.Compare)
	case config.JobIntermediate:
		its, err := coupling.IntermediateTerms(c, withEngine)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s", notation.FormatConfiguration(c))
		writeIntermediate(w, a.st, c.Entries(), its)
	case config.JobCouplings:
		chains, err := coupling.Chains(c, withEngine)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s: %d coupling chains", notation.FormatConfiguration(c), len(chains))
		writeLines(w, chains)
	case config.JobExcite:
		targets, err := notation.ParseOrbitals(strings.Join(job.To, " "))
		if err != nil {
			return err
		}
		cs, err := configuration.Excited(c, targets, exciteOptions(a.ctx, excite)...)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s: %d configurations", notation.FormatConfiguration(c), len(cs))
		writeConfigurations(w, cs)
	case config.JobSpin:
		cs := configuration.SpinConfigurations(c)
		a.st.writeHeading(w, "%s: %d spin configurations", notation.FormatConfiguration(c), len(cs))
		writeLines(w, cs)
	}
	return nil
}

func (a *app) runRelativistic(w io.Writer, job config.Job, excite config.ExciteConfig) error {
	c, err := notation.ParseRelativisticConfiguration(job.Configuration)
	if err != nil {
		return err
	}
	withEngine := coupling.WithEngine(a.engine)
	switch job.Command {
	case config.JobTerms:
		js, err := coupling.JTerms(c, withEngine)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s: %d J values", notation.FormatConfiguration(c), len(js))
		writeTally(w, a.st, js, term.JTerm.Compare)
	case config.JobIntermediate:
		its, err := coupling.JIntermediateTerms(c, withEngine)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s", notation.FormatConfiguration(c))
		writeIntermediate(w, a.st, c.Entries(), its)
	case config.JobCouplings:
		chains, err := coupling.JChains(c, withEngine)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s: %d coupling chains", notation.FormatConfiguration(c), len(chains))
		writeLines(w, chains)
	case config.JobExcite:
		targets, err := notation.ParseRelativisticOrbitals(strings.Join(job.To, " "))
		if err != nil {
			return err
		}
		cs, err := configuration.Excited(c, targets, exciteOptions(a.ctx, excite)...)
		if err != nil {
			return err
		}
		a.st.writeHeading(w, "%s: %d configurations", notation.FormatConfiguration(c), len(cs))
		writeConfigurations(w, cs)
	case config.JobSpin:
		cs := configuration.SpinConfigurations(c)
		a.st.writeHeading(w, "%s: %d spin configurations", notation.FormatConfiguration(c), len(cs))
		writeLines(w, cs)
	}
	return nil
}

func exciteOptions(ctx context.Context, e config.ExciteConfig) []configuration.ExcitationOption {
	return []configuration.ExcitationOption{
		configuration.WithContext(ctx),
		configuration.WithMinExcitations(e.MinExcitations),
		configuration.WithMaxExcitations(e.MaxExcitations),
		configuration.WithKeepParity(e.KeepParity),
	}
}

func writeConfigurations[O orbital.Subshell[O]](w io.Writer, cs []*configuration.Configuration[O]) {
	for _, c := range cs {
		fmt.Fprintf(w, "  %s\n", notation.FormatConfiguration(c))
	}
}

func writeIntermediate[O orbital.Subshell[O], T term.Coupled[T]](w io.Writer, s styles, entries []configuration.Entry[O], its [][]term.IntermediateTerm[T]) {
	for i, e := range entries {
		names := make([]string, len(its[i]))
		for k, it := range its[i] {
			names[k] = it.String()
		}
		fmt.Fprintf(w, "  %s %s\n", s.label.Render(e.String()+":"), strings.Join(names, " "))
	}
}

// splitTargets breaks --to values on whitespace and on commas outside
// brackets, so "2s,2p" is two orbitals and "4[s,p]" stays one list.
func splitTargets(vals []string) []string {
	var out []string
	for _, v := range vals {
		depth := 0
		f := strings.FieldsFunc(v, func(r rune) bool {
			switch r {
			case '[':
				depth++
			case ']':
				depth--
			case ',':
				return depth == 0
			}
			return r == ' ' || r == '\t'
		})
		out = append(out, f...)
	}
	return out
}

package config

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Batch commands.
const (
	JobTerms        = "terms"
	JobIntermediate = "intermediate"
	JobCouplings    = "couplings"
	JobExcite       = "excite"
	JobSpin         = "spin"
)

// Job is one [[job]] table of a batch file. Unset excitation fields fall
// back to the [excite] defaults of Config.
type Job struct {
	Name           string   `toml:"name"`
	Command        string   `toml:"command"`
	Configuration  string   `toml:"configuration"`
	Relativistic   bool     `toml:"relativistic"`
	To             []string `toml:"to"`
	MinExcitations *int     `toml:"min_excitations"`
	MaxExcitations *int     `toml:"max_excitations"`
	KeepParity     *bool    `toml:"keep_parity"`
}

// Batch is a list of jobs run in file order.
type Batch struct {
	Jobs []Job `toml:"job"`
}

// LoadBatch reads and validates a batch file.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch decodes and validates batch TOML.
func ParseBatch(data []byte) (*Batch, error) {
	var b Batch
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	for i, j := range b.Jobs {
		if err := j.Validate(); err != nil {
			return nil, fmt.Errorf("job %d (%s): %w", i+1, j.Name, err)
		}
	}
	return &b, nil
}

// Validate checks the command name and required fields.
func (j Job) Validate() error {
	switch j.Command {
	case JobTerms, JobIntermediate, JobCouplings, JobSpin:
	case JobExcite:
		if len(j.To) == 0 {
			return fmt.Errorf("%w: excite needs at least one target orbital", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown command %q", ErrInvalidConfig, j.Command)
	}
	if j.Configuration == "" {
		return fmt.Errorf("%w: missing configuration", ErrInvalidConfig)
	}
	return nil
}

// ExciteSettings merges the job's excitation overrides into defaults.
func (j Job) ExciteSettings(defaults ExciteConfig) ExciteConfig {
	out := defaults
	if j.MinExcitations != nil {
		out.MinExcitations = *j.MinExcitations
	}
	if j.MaxExcitations != nil {
		out.MaxExcitations = *j.MaxExcitations
	}
	if j.KeepParity != nil {
		out.KeepParity = *j.KeepParity
	}
	return out
}

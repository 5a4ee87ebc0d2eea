package partition

import (
	"github.com/teamcut/teamcut/pkg/errors"
)

// Config exposes the sampling and iteration budgets of the three-phase
// search. The defaults reproduce the established search behavior; raising
// budgets trades runtime for solution quality.
type Config struct {
	// SamplesPerTeamCount is the number of independent samples drawn at each
	// team count during the sweep.
	SamplesPerTeamCount int `toml:"samples_per_team_count"`

	// CutoffRatio stops the sweep once the best score at the current team
	// count exceeds the best score seen anywhere by this factor.
	CutoffRatio float64 `toml:"cutoff_ratio"`

	// ResampleLeaderboardSize caps the candidates carried from the sweep
	// into resampling.
	ResampleLeaderboardSize int `toml:"resample_leaderboard_size"`

	// ResamplesPerCandidate is the number of fresh samples drawn at each
	// retained candidate's team count.
	ResamplesPerCandidate int `toml:"resamples_per_candidate"`

	// ImproveLeaderboardSize caps the candidates carried from resampling
	// into local improvement.
	ImproveLeaderboardSize int `toml:"improve_leaderboard_size"`

	// ImprovementIterations is the number of perturbation steps applied to
	// each surviving candidate.
	ImprovementIterations int `toml:"improvement_iterations"`
}

// DefaultConfig returns the standard search budgets.
func DefaultConfig() Config {
	return Config{
		SamplesPerTeamCount:     3,
		CutoffRatio:             1000,
		ResampleLeaderboardSize: 10,
		ResamplesPerCandidate:   10,
		ImproveLeaderboardSize:  10,
		ImprovementIterations:   5,
	}
}

// Validate checks that every budget is positive.
func (c Config) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"samples_per_team_count", c.SamplesPerTeamCount > 0},
		{"cutoff_ratio", c.CutoffRatio > 0},
		{"resample_leaderboard_size", c.ResampleLeaderboardSize > 0},
		{"resamples_per_candidate", c.ResamplesPerCandidate > 0},
		{"improve_leaderboard_size", c.ImproveLeaderboardSize > 0},
		{"improvement_iterations", c.ImprovementIterations > 0},
	}
	for _, chk := range checks {
		if !chk.ok {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive", chk.name)
		}
	}
	return nil
}

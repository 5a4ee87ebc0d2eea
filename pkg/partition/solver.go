package partition

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/teamcut/teamcut/pkg/graph"
	"github.com/teamcut/teamcut/pkg/observability"
)

// Search phase names reported through logs and observability hooks.
const (
	PhaseSweep    = "sweep"
	PhaseResample = "resample"
	PhaseImprove  = "improve"
)

// Solver drives the three-phase search: a randomized sweep over team counts,
// resampling around the most promising counts, and stochastic local
// improvement of the survivors.
//
// A Solver holds no per-solve state; the same Solver may be reused for
// multiple instances. It is not safe for concurrent use because the random
// source is shared across calls.
type Solver struct {
	Config Config
	Rand   *rand.Rand
	Logger *log.Logger
}

// New creates a solver with the given configuration.
// If rng is nil, a source seeded from the current time is used.
// If logger is nil, the default logger is used.
func New(cfg Config, rng *rand.Rand, logger *log.Logger) *Solver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Solver{
		Config: cfg,
		Rand:   rng,
		Logger: logger,
	}
}

// Solve searches for a low-cost team assignment of g and returns the best
// candidate found within the configured sampling budget. The result is
// heuristic, not optimal.
//
// When the instance has fewer than four edges the team-count sweep range is
// empty; Solve then returns the trivial single-team assignment rather than
// failing.
//
// Cancellation is checked between team counts and candidates; the per-sample
// draw order is otherwise strictly sequential, so a fixed seed reproduces the
// same winner.
func (s *Solver) Solve(ctx context.Context, g *graph.Graph) (Candidate, error) {
	if err := s.Config.Validate(); err != nil {
		return Candidate{}, err
	}

	start := time.Now()
	observability.Solver().OnSolveStart(ctx, g.NumVertices(), g.NumEdges())

	resample, err := s.sweep(ctx, g)
	if err != nil {
		return Candidate{}, err
	}

	improve, err := s.resample(ctx, g, resample)
	if err != nil {
		return Candidate{}, err
	}

	best, err := s.improve(ctx, g, improve)
	if err != nil {
		return Candidate{}, err
	}

	s.Logger.Info("solve complete",
		"score", best.Score,
		"teams", best.TeamCount,
		"duration", time.Since(start).Round(time.Millisecond))
	observability.Solver().OnSolveComplete(ctx, best.Score, time.Since(start))
	return best, nil
}

// sweep is Phase A: sample assignments at increasing team counts, retaining
// the best in a bounded leaderboard. The sweep stops early once the best
// score at the current team count degrades past CutoffRatio times the best
// score seen anywhere, on the assumption that score is roughly unimodal in
// the team count.
func (s *Solver) sweep(ctx context.Context, g *graph.Graph) (*Leaderboard, error) {
	phaseStart := time.Now()
	observability.Solver().OnPhaseStart(ctx, PhaseSweep)

	board := NewLeaderboard(s.Config.ResampleLeaderboardSize)
	best := math.Inf(1)
	maxTeams := g.NumEdges() / 2

	for numTeams := 1; numTeams < maxTeams; numTeams++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bestSample := math.Inf(1)
		for i := 0; i < s.Config.SamplesPerTeamCount; i++ {
			teams := Random(g, numTeams, s.Rand)
			score := Score(g, teams)
			if score < best {
				best = score
			}
			if score < bestSample {
				bestSample = score
			}
			board.Update(Candidate{Teams: teams, TeamCount: numTeams, Score: score})
			observability.Solver().OnCandidateScored(ctx, numTeams, score)
		}

		if math.Round(bestSample) > best*s.Config.CutoffRatio {
			s.Logger.Debug("sweep cutoff reached", "team_count", numTeams, "best", best)
			break
		}
	}

	s.Logger.Debug("sweep complete",
		"candidates", board.Len(),
		"duration", time.Since(phaseStart).Round(time.Millisecond))
	observability.Solver().OnPhaseComplete(ctx, PhaseSweep, board.Len(), time.Since(phaseStart))
	return board, nil
}

// resample is Phase B: for each candidate retained by the sweep, keep the
// original and draw fresh samples at the same team count, concentrating
// effort around team counts that already scored well.
func (s *Solver) resample(ctx context.Context, g *graph.Graph, retained *Leaderboard) (*Leaderboard, error) {
	phaseStart := time.Now()
	observability.Solver().OnPhaseStart(ctx, PhaseResample)

	board := NewLeaderboard(s.Config.ImproveLeaderboardSize)
	for _, c := range retained.Candidates() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		board.Update(c)
		for i := 0; i < s.Config.ResamplesPerCandidate; i++ {
			teams := Random(g, c.TeamCount, s.Rand)
			score := Score(g, teams)
			board.Update(Candidate{Teams: teams, TeamCount: c.TeamCount, Score: score})
			observability.Solver().OnCandidateScored(ctx, c.TeamCount, score)
		}
	}

	s.Logger.Debug("resample complete",
		"candidates", board.Len(),
		"duration", time.Since(phaseStart).Round(time.Millisecond))
	observability.Solver().OnPhaseComplete(ctx, PhaseResample, board.Len(), time.Since(phaseStart))
	return board, nil
}

// improve is Phase C: perturb each surviving candidate a fixed number of
// times, keeping a perturbation only when it strictly improves that
// candidate, and return the best trajectory endpoint across all candidates.
func (s *Solver) improve(ctx context.Context, g *graph.Graph, retained *Leaderboard) (Candidate, error) {
	phaseStart := time.Now()
	observability.Solver().OnPhaseStart(ctx, PhaseImprove)

	best := s.trivial(g)
	bestScore := math.Inf(1)
	if retained.Len() == 0 {
		// Degenerate sweep range: fall back to a single team.
		s.Logger.Warn("no candidates retained, returning single-team assignment")
		observability.Solver().OnPhaseComplete(ctx, PhaseImprove, 0, time.Since(phaseStart))
		return best, nil
	}

	for _, c := range retained.Candidates() {
		if err := ctx.Err(); err != nil {
			return Candidate{}, err
		}

		teams, score := c.Teams, c.Score
		for i := 0; i < s.Config.ImprovementIterations; i++ {
			next := ImproveWorstTeam(g, teams, s.Rand)
			if nextScore := Score(g, next); nextScore < score {
				teams, score = next, nextScore
			}
		}
		if score < bestScore {
			best = Candidate{Teams: teams, TeamCount: NumTeams(teams), Score: score}
			bestScore = score
		}
	}

	s.Logger.Debug("improve complete",
		"score", best.Score,
		"duration", time.Since(phaseStart).Round(time.Millisecond))
	observability.Solver().OnPhaseComplete(ctx, PhaseImprove, retained.Len(), time.Since(phaseStart))
	return best, nil
}

// trivial returns the single-team assignment for g, scored.
func (s *Solver) trivial(g *graph.Graph) Candidate {
	teams := make([]int, g.NumVertices())
	for i := range teams {
		teams[i] = 1
	}
	c := Candidate{Teams: teams, TeamCount: 1, Score: Score(g, teams)}
	if len(teams) == 0 {
		c.TeamCount = 0
	}
	return c
}

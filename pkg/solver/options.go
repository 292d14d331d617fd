package solver

import (
	"github.com/sirupsen/logrus"

	"github.com/vedadux/gatesat/pkg/ipasir"
)

// Option configures a Solver at construction time, following the same
// functional-options shape the teacher uses for its own solver
// constructor (github.com/operator-framework/operator-lifecycle-manager's
// resolver/solver package).
type Option func(s *Solver) error

// WithLogger sets the logger gate construction and state transitions
// report to. The default is logrus.StandardLogger().
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Solver) error {
		s.log = log
		return nil
	}
}

// WithBackend overrides the incremental clause interface the façade
// emits Tseitin clauses to. The default is a github.com/go-air/gini
// instance.
func WithBackend(b ipasir.Backend) Option {
	return func(s *Solver) error {
		s.backend = b
		return nil
	}
}

// WithXorFanIn overrides the number of literals the variadic XOR
// encoder folds into one fresh variable per round (spec calls the
// default of 7 arbitrary within the 2-8 range). n must be at least 2.
func WithXorFanIn(n int) Option {
	return func(s *Solver) error {
		if n < 2 {
			return errInvalidFanIn(n)
		}
		s.xorFanIn = n
		return nil
	}
}

// WithCardinalityEncoder overrides the strategy MakeAtMost uses to
// encode "at most k of these". The default is SequentialCounter.
func WithCardinalityEncoder(e CardinalityEncoder) Option {
	return func(s *Solver) error {
		s.cardEncoder = e
		return nil
	}
}

var defaultOptions = []Option{
	func(s *Solver) error {
		if s.log == nil {
			s.log = logrus.StandardLogger()
		}
		return nil
	},
	func(s *Solver) error {
		if s.backend == nil {
			s.backend = ipasir.NewGini()
		}
		return nil
	},
	func(s *Solver) error {
		if s.xorFanIn == 0 {
			s.xorFanIn = 7
		}
		return nil
	},
	func(s *Solver) error {
		if s.cardEncoder == nil {
			s.cardEncoder = SequentialCounter{}
		}
		return nil
	},
}

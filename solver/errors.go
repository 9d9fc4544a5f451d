// Package solver: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All solve paths
// MUST return these sentinels and tests MUST check them via errors.Is.
// Context (period index, offending field) is attached with
// fmt.Errorf("...: %w", ErrX) at the point of detection.
package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is the base sentinel for out-of-range scalar or
	// sequence inputs. The field-specific sentinels below wrap it.
	ErrInvalidParameter = errors.New("solver: invalid parameter")

	// ErrCRRA rejects a risk-aversion coefficient that is not finite and > 0.
	ErrCRRA = fmt.Errorf("%w: CRRA must be finite and > 0", ErrInvalidParameter)

	// ErrDiscFac rejects a discount factor outside (0, 1].
	ErrDiscFac = fmt.Errorf("%w: DiscFac must be in (0, 1]", ErrInvalidParameter)

	// ErrRate rejects a non-positive or non-finite gross interest factor.
	ErrRate = fmt.Errorf("%w: interest factor must be finite and > 0", ErrInvalidParameter)

	// ErrKinkedRates rejects RBoro < RSave (borrowing cannot be cheaper
	// than saving, or arbitrage makes the problem ill-posed).
	ErrKinkedRates = fmt.Errorf("%w: RBoro must be >= RSave", ErrInvalidParameter)

	// ErrLivPrb rejects a survival probability outside [0, 1].
	ErrLivPrb = fmt.Errorf("%w: LivPrb entries must be in [0, 1]", ErrInvalidParameter)

	// ErrGroFac rejects a non-positive income growth factor.
	ErrGroFac = fmt.Errorf("%w: PermGroFac entries must be finite and > 0", ErrInvalidParameter)

	// ErrSeqLength rejects parameter sequences of unequal or zero length.
	ErrSeqLength = fmt.Errorf("%w: parameter sequences must share one length >= 1", ErrInvalidParameter)

	// ErrCycles rejects a negative cycle count (0 means infinite horizon).
	ErrCycles = fmt.Errorf("%w: Cycles must be >= 0", ErrInvalidParameter)

	// ErrTol rejects a negative convergence tolerance or iteration budget
	// (zero means "use the documented default").
	ErrTol = fmt.Errorf("%w: Tol and MaxIters must be >= 0", ErrInvalidParameter)

	// ErrUnknownVariant rejects a Variant outside the closed set.
	ErrUnknownVariant = fmt.Errorf("%w: unknown problem variant", ErrInvalidParameter)

	// ErrNoSolution indicates a non-contracting Bellman operator: the
	// stability precheck failed (impatience or finite-human-wealth
	// condition violated with no borrowing constraint to lean on).
	ErrNoSolution = errors.New("solver: parameters admit no solution")

	// ErrNoConvergence indicates the infinite-horizon fixed-point
	// iteration did not meet tolerance within the iteration budget.
	ErrNoConvergence = errors.New("solver: fixed-point iteration did not converge")
)

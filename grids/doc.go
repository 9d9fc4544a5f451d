// Package grids constructs the exogenous post-decision asset grids used
// by the endogenous grid method.
//
// The workhorse is ExpMult: a nested-exponential spacing that concentrates
// nodes near the lower bound, where consumption functions curve hardest.
// The nesting degree controls how aggressive the concentration is — each
// extra level applies another log transform before the uniform partition,
// so degree 1 is plain exponential spacing and higher degrees pile nodes
// ever closer to the minimum.
//
// User-supplied breakpoints can be spliced in; the result is always
// strictly increasing and de-duplicated.
//
// Errors come from the ErrInvalidGrid family; construction is a pure
// function of its inputs.
package grids

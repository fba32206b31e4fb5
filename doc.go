// Package quickval provides a small set of closed-form calculators used as
// auxiliary tools in an investment-analysis workflow.
//
// The core functionalities include:
//   - Graham Analysis: estimating a stock's intrinsic value from its earnings
//     per share and expected growth rate, deriving a margin of safety against
//     the current price, and mapping it to a valuation score and a textual
//     recommendation.
//   - Kelly Position Sizing: computing the Kelly criterion fraction from
//     either win/loss trading statistics or a historical returns series,
//     scaling it down with a fractional-Kelly multiplier, clamping it to
//     position limits, and assessing a coarse risk tier.
//
// Every calculation is a pure function over scalar inputs: there is no
// persistence, no networking, and no shared state between invocations. The
// package serves as the foundational logic for the `qv` command-line tool.
package quickval

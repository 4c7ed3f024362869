// Package fundfolio provides the types and computations for tracking a
// personal mutual fund portfolio. It is designed to be local-first and
// auditable, keeping the full trade history under the user's control.
//
// The core functionalities include:
//   - Transaction Ledger: Recording fund purchases and sells as signed
//     entries, with every aggregate answerable as of an arbitrary date.
//   - Daily Valuation: Joining a position's trade history backward against
//     the fund's published per-unit value series to produce a daily profit
//     timeseries, per scheme and for the portfolio as a whole.
//   - Reports: Checkpoint summaries over the timeseries (today versus recent
//     days, weeks, and months) and scheme-level pivots of absolute and
//     relative profit.
//   - Data Persistence: Encoding and decoding scheme records to and from
//     newline-delimited JSON.
//
// This package serves as the foundational logic for the `mft` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fundfolio

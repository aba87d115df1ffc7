// Package beanreport renders textual financial reports from a parsed
// accounting ledger.
//
// The package holds the ledger model (accounts, postings, per-account
// closing inventories), the registry of available reports, and the two
// aggregation algorithms behind the concrete reports:
//
//   - Holdings: reduces every account's closing inventory into one row per
//     (account, currency) pair, collapsing cost lots of the same currency.
//   - Trial balance: rolls every posting up into per-account, per-currency
//     balances grouped into the five standard top-level sections (Assets,
//     Equity, Expenses, Income, Liabilities).
//
// All quantity arithmetic is exact decimal, never binary floating point,
// so two-decimal-place display cannot drift under repeated summation.
//
// Rendering the computed reports is the job of the renderer package; the
// bean-report command-line tool in cmd wires ledger loading, report
// selection and output together.
package beanreport

// Version is the release version of the bean-report tool.
const Version = "2.1.0"

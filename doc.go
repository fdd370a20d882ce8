// Package networth models a person's net financial position from a set of
// heterogeneous assets and liabilities, computes how much of it is realistically
// accessible, and projects what they could afford with a bigger mortgage.
//
// The core functionalities include:
//   - Asset Model: a closed set of asset variants (House, Shares, Offset, Misc,
//     Loan) and of liquidity policies (AllLiquid, NotLiquid, PercentLiquid,
//     SpendableAmount, RemainingAmount).
//   - Liquidity Engine: Liquid computes the cash an asset can realistically be
//     turned into, deducting agent fees from houses.
//   - Net Position: NetPosition sums every asset's Contribution, netting house
//     mortgages exactly once.
//   - Affordability: Afford and Project scale the current mortgage over a ladder
//     of repayment multipliers and estimate the resulting purchasing power,
//     net of stamp duty.
//   - Mutations: Assets is an immutable collection with slug based Create,
//     Update and Remove operations.
//   - Data Persistence: EncodeAssets and DecodeAssets read and write a
//     human-readable JSONL asset file.
//
// All computations are exact: amounts are decimal numbers, not floats.
//
// This package serves as the foundational logic for the `nw` command-line tool.
package networth

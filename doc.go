// Package lazybeaver computes the Lazy Beaver function LB(n): the smallest
// positive step count k such that no n-state, two-symbol Turing machine
// started on a blank tape halts after exactly k steps.
//
// 🚀 What is lazybeaver?
//
//	An exhaustive, deterministic enumeration engine that brings together:
//		• Machines: compact transition tables with lazy refinement
//		• Stepper: budgeted simulation on a bit tape + a never-halts proof
//		• Search: depth-first enumeration, budget escalation, histograms
//		• CLI: run / limited / simulate / distribution with text, table, YAML and JSON output
//
// ✨ Why lazy refinement?
//
//   - Cells stay undefined until a run actually reads them
//   - Machines that differ only in unreached cells are simulated once
//   - State names are introduced in order, so relabelings are skipped
//   - The first move is fixed to Right, so mirror images are skipped
//
// Under the hood, everything is organized under three packages:
//
//	atm/     states, symbols, cells, machines, refinement, tape, text form
//	stepper/ Execute (bounded simulation) and CannotHalt (reachability proof)
//	search/  Limited, LazyBeaver, Distribution and their options
//
// Quick example:
//
//	1RB1LB_1LA---
//
//	is the 2-state machine "in A on 0: write 1, move right, go to B; ...;
//	in B on 1: halt". It halts after 6 steps, one short of LB(2) = 7.
//
//	go install github.com/katalvlaran/lazybeaver/cmd/lazybeaver@latest
package lazybeaver

// Package advent is a home for daily puzzle solutions and the small toolkit
// they share.
//
// Layout:
//
//	runner/   — the Runner contract (Name, Parse, Part1, Part2), the timed
//	            driver, registries, selections and batch runs
//	search/   — generic BFS, DFS, flood fill and Dijkstra over state types
//	            that enumerate their own moves
//	grid/     — rectangular grids, points and 4/8 connectivity
//	input/    — loading inputs and splitting them into lines, blocks and numbers
//	config/   — YAML configuration for the command
//	puzzles/  — one package per year, one type per day
//	cmd/advent/ — the command-line runner
//
// Each puzzle is independent: it parses its input once and computes two
// answers from that parsed state. Nothing is shared between puzzles.
package advent

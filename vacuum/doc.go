// Package vacuum plans for a vacuum-cleaning agent on a walled grid.
//
// Room is the reference Environment, usually parsed from ASCII. Planner
// adapts an Environment to search.Problem; Plan runs one search to the
// nearest dirty room and Clean repeats it until nothing reachable is dirty.
// With turn cost enabled each move also pays for re-orienting the agent:
// 0.5 for a quarter turn and 1 for a reversal.
package vacuum

// Package cluster sizes a GPU cluster under a facility power cap.
//
// [EvaluateCluster] derives the leaf-spine fabric and the power budget for
// a fixed node count. [SolveMaxNodes] binary-searches the largest node count
// whose total power stays within the cap. Total power is non-decreasing in
// the node count (every term is a non-negative multiple of a ceiling-divided
// port count or of the node count itself), so feasibility is monotone and
// the search finds the exact threshold.
//
// Both functions are pure: the same config always yields the same report.
package cluster

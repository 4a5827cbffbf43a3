// SPDX-License-Identifier: MIT

package builder

// Canonical constructor names, accepted by ByName.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomConnected   = "RandomConnected"
)

// CenterVertexID is the fixed hub ID used by Star and Wheel.
const CenterVertexID = "Center"

// Minimal sizes per family.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinRandomNodes   = 1
)

// Probability bounds for the random families.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

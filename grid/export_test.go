package grid

// Test-only bridge exposing private kernels to the grid_test package,
// so the discretization and interval logic can be verified white-box
// without widening the production API.
var (
	Discretize       = discretize
	FeasibleInterval = feasibleInterval
)

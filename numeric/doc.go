// Package numeric provides small, private-free elementwise and
// reduction kernels used by the rank and karma stages, so the same
// tight loop isn't duplicated across packages.
//
// Mirrors lvlath/matrix's ew* kernel family, narrowed from Dense
// matrices to flat per-node vectors since every cyberank field is a
// single scalar per content node or per user, not a 2-D grid.
package numeric

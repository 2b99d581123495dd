// Package convert provides CSR<->JSON adapters for a graph.Dataset and
// for the engine's output arrays, filling the slot the teacher's
// converterts package left as an empty doc-only stub. Sentinel errors
// are prefixed "convert: ..." and never wrapped internally, matching
// matrix/errors.go's convention: callers match with errors.Is, wrap
// with fmt.Errorf("%w: ...", ...) only at the outer boundary if
// positional context is needed.
package convert

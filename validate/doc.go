// Package validate rejects malformed visualizer inputs before any run starts.
//
// Each parameter struct carries validator/v10 tags for the simple bounds
// (node counts, lengths, board sizes). Structural rules that tags cannot
// express (endpoints in range, self-loops, duplicates per direction mode,
// tree shape) are checked by hand afterwards. Every failure wraps
// ErrInvalidInput, so callers branch with errors.Is.
package validate

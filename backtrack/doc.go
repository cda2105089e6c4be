// Package backtrack implements three constrained backtracking searches that
// report every complete solution in the order the search visits them.
//
//   - NQueens: one queen per row; occupied columns and both diagonal
//     families (r+c and r-c+n-1) live in boolean sets, so an attacked column
//     is rejected in O(1) without rescanning the board.
//   - Sudoku: the next cell to branch on is chosen by the
//     most-constrained-variable rule. Cells are scanned in reading order and
//     the first empty cell with the strictly fewest candidates wins; a cell
//     with no candidate is a dead end. Candidates are tried in ascending order.
//   - PalindromePartition: cuts palindromic prefixes, checking each candidate
//     with a two-pointer scan, and recurses on the remainder.
//
// Each commitment publishes an update step, each undo a backtrack step and
// each complete solution a found step. WithMaxSolutions stops the search
// after k solutions.
package backtrack

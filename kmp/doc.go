// Package kmp implements Knuth–Morris–Pratt matching: construction of the
// prefix function (LPS table) and a linear-time search that reports every
// match, overlapping ones included.
//
// lps[i] is the length of the longest proper prefix of pattern[0..i] that is
// also a suffix of it. On a mismatch both phases fall back through the table
// without advancing the main index, possibly several times in a row. The
// total number of character comparisons is bounded by 2*(|text|+|pattern|).
//
// Strings are compared rune by rune; positions are rune offsets.
package kmp

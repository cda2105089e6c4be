// Package trie implements a prefix tree over the lowercase Latin alphabet.
//
// Every node holds a fixed [26] child array and an explicit end-of-word flag.
// Build inserts a word list and publishes one step per created or reused
// node, so an observer can watch shared prefixes form.
package trie

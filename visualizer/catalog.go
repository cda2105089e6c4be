package visualizer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/stepviz/backtrack"
	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/hld"
	"github.com/katalvlaran/stepviz/kmp"
	"github.com/katalvlaran/stepviz/mo"
	"github.com/katalvlaran/stepviz/prim_kruskal"
	"github.com/katalvlaran/stepviz/trace"
	"github.com/katalvlaran/stepviz/trie"
	"github.com/katalvlaran/stepviz/validate"
)

// ErrUnknown indicates a name missing from the catalog.
var ErrUnknown = errors.New("visualizer: unknown visualizer")

// Category groups visualizers for listing.
type Category string

const (
	CategoryGraph     Category = "graph"
	CategoryString    Category = "string"
	CategorySearch    Category = "search"
	CategoryQuery     Category = "range-query"
	CategoryTree      Category = "tree"
	CategoryStructure Category = "structure"
)

// Descriptor is one catalog entry.
type Descriptor struct {
	Name     string
	Title    string
	Category Category
	Defaults Params
	run      func(p Params) (iter.Seq[trace.Step], error)
}

// Run validates p and returns the step sequence of one run.
func (d Descriptor) Run(p Params) (iter.Seq[trace.Step], error) {
	steps, err := d.run(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}

	return steps, nil
}

// RunDefaults runs the demo inputs.
func (d Descriptor) RunDefaults() (iter.Seq[trace.Step], error) {
	return d.Run(d.Defaults)
}

// steps adapts a core call to a lazy sequence. The core's own error is
// impossible after validation, so one that still occurs panics.
func steps(run func(rec trace.Recorder) error) iter.Seq[trace.Step] {
	return trace.Steps(func(rec trace.Recorder) {
		if err := run(rec); err != nil {
			panic(fmt.Sprintf("visualizer: validated run failed: %v", err))
		}
	})
}

// maxSolutions rejects a negative cap; 0 reports every solution.
func maxSolutions(p Params) error {
	if p.MaxSolutions < 0 {
		return fmt.Errorf("%w: MaxSolutions: must be at least 0", validate.ErrInvalidInput)
	}

	return nil
}

// graphRun validates the graph section and hands the graph to run.
func graphRun(run func(p Params, rec trace.Recorder, g graphInput) error) func(Params) (iter.Seq[trace.Step], error) {
	return func(p Params) (iter.Seq[trace.Step], error) {
		g, err := validate.Graph(p.Graph)
		if err != nil {
			return nil, err
		}
		in := graphInput{graph: g, source: p.Graph.Source}

		return steps(func(rec trace.Recorder) error { return run(p, rec, in) }), nil
	}
}

var catalog = []Descriptor{
	{
		Name:     "bfs",
		Title:    "Breadth-first search",
		Category: CategoryGraph,
		Defaults: Params{Graph: graphParams(builder.MustRandomTree(8, 3), 0)},
		run: graphRun(func(_ Params, rec trace.Recorder, in graphInput) error {
			_, err := bfs.BFS(in.graph, in.source, bfs.WithRecorder(rec))
			return err
		}),
	},
	{
		Name:     "dfs",
		Title:    "Depth-first search",
		Category: CategoryGraph,
		Defaults: Params{Graph: graphParams(builder.MustRandomTree(8, 5), 0)},
		run: graphRun(func(_ Params, rec trace.Recorder, in graphInput) error {
			_, err := dfs.DFS(in.graph, in.source, dfs.WithFullTraversal(), dfs.WithRecorder(rec))
			return err
		}),
	},
	{
		Name:     "topological-sort",
		Title:    "Topological sort",
		Category: CategoryGraph,
		Defaults: Params{Graph: directed(6, [2]int{5, 2}, [2]int{5, 0}, [2]int{4, 0}, [2]int{4, 1}, [2]int{2, 3}, [2]int{3, 1})},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if !p.Graph.Directed {
				return nil, fmt.Errorf("%w: Graph.Directed: topological sort needs a directed graph", validate.ErrInvalidInput)
			}

			return graphRun(func(_ Params, rec trace.Recorder, in graphInput) error {
				_, err := dfs.TopologicalSort(in.graph, dfs.WithRecorder(rec))
				return err
			})(p)
		},
	},
	{
		Name:     "scc",
		Title:    "Strongly connected components (Kosaraju)",
		Category: CategoryGraph,
		Defaults: Params{Graph: directed(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{3, 4}, [2]int{4, 3}, [2]int{2, 3}, [2]int{1, 3})},
		run: graphRun(func(_ Params, rec trace.Recorder, in graphInput) error {
			_, err := dfs.SCC(in.graph, dfs.WithRecorder(rec))
			return err
		}),
	},
	{
		Name:     "dijkstra",
		Title:    "Dijkstra shortest paths",
		Category: CategoryGraph,
		Defaults: Params{Graph: graphParams(builder.MustRandomConnected(6, 9, 7), 0), Target: Target(5)},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if !p.Graph.Weighted {
				return nil, fmt.Errorf("%w: Graph.Weighted: shortest paths need weights", validate.ErrInvalidInput)
			}
			target := -1
			if p.Target != nil {
				target = *p.Target
				if target < 0 || target >= p.Graph.Nodes {
					return nil, fmt.Errorf("%w: Target: node %d out of range", validate.ErrInvalidInput, target)
				}
			}

			return graphRun(func(p Params, rec trace.Recorder, in graphInput) error {
				_, err := dijkstra.Dijkstra(in.graph, in.source, dijkstra.WithTarget(target), dijkstra.WithRecorder(rec))
				return err
			})(p)
		},
	},
	mst(prim_kruskal.MethodKruskal, "Kruskal minimum spanning tree"),
	mst(prim_kruskal.MethodPrim, "Prim minimum spanning tree"),
	{
		Name:     "dsu",
		Title:    "Disjoint-set union",
		Category: CategoryStructure,
		Defaults: Params{Nodes: 6, Ops: []dsu.Op{
			dsu.Union(0, 1), dsu.Union(2, 3), dsu.Union(1, 3), dsu.Find(3),
			dsu.Union(4, 5), dsu.Union(0, 2), dsu.Union(5, 0), dsu.Find(4),
		}},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.UnionFind(validate.UnionFindParams{Nodes: p.Nodes, Ops: p.Ops}); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				_, err := dsu.Run(p.Nodes, p.Ops, dsu.WithRecorder(rec))
				return err
			}), nil
		},
	},
	{
		Name:     "kmp",
		Title:    "Knuth-Morris-Pratt search",
		Category: CategoryString,
		Defaults: Params{Text: "ABABDABACDABABCABAB", Pattern: "ABABCABAB"},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Search(validate.SearchParams{Text: p.Text, Pattern: p.Pattern}); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				kmp.Search(p.Text, p.Pattern, kmp.WithRecorder(rec))
				return nil
			}), nil
		},
	},
	{
		Name:     "n-queens",
		Title:    "N-Queens",
		Category: CategorySearch,
		Defaults: Params{N: 4},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Queens(validate.QueensParams{N: p.N}); err != nil {
				return nil, err
			}
			if err := maxSolutions(p); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				_, err := backtrack.NQueens(p.N, backtrack.WithMaxSolutions(p.MaxSolutions), backtrack.WithRecorder(rec))
				return err
			}), nil
		},
	},
	{
		Name:     "sudoku",
		Title:    "Sudoku (most constrained cell first)",
		Category: CategorySearch,
		Defaults: Params{Grid: demoSudoku},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Sudoku(validate.SudokuParams{Grid: p.Grid}); err != nil {
				return nil, err
			}
			if err := maxSolutions(p); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				_, err := backtrack.Sudoku(p.Grid, backtrack.WithMaxSolutions(p.MaxSolutions), backtrack.WithRecorder(rec))
				return err
			}), nil
		},
	},
	{
		Name:     "palindrome-partition",
		Title:    "Palindrome partitioning",
		Category: CategorySearch,
		Defaults: Params{Text: "aabbc"},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Partition(validate.PartitionParams{Text: p.Text}); err != nil {
				return nil, err
			}
			if err := maxSolutions(p); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				backtrack.PalindromePartition(p.Text, backtrack.WithMaxSolutions(p.MaxSolutions), backtrack.WithRecorder(rec))
				return nil
			}), nil
		},
	},
	{
		Name:     "mo",
		Title:    "Mo's algorithm (offline range queries)",
		Category: CategoryQuery,
		Defaults: Params{
			Values:  []int{1, 1, 2, 1, 3, 4, 5, 2, 8},
			Queries: []mo.Query{{L: 0, R: 4}, {L: 1, R: 3}, {L: 2, R: 6}},
		},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Ranges(validate.RangeParams{Values: p.Values, Queries: p.Queries}); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				_, err := mo.Answer(p.Values, p.Queries, mo.WithRecorder(rec))
				return err
			}), nil
		},
	},
	{
		Name:     "hld",
		Title:    "Heavy-light decomposition",
		Category: CategoryTree,
		Defaults: Params{Tree: validate.TreeParams{
			Nodes: 8,
			Edges: [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {4, 5}, {4, 6}, {2, 7}},
		}},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Tree(p.Tree); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				_, err := hld.Decompose(p.Tree.Nodes, p.Tree.Edges, p.Tree.Root, hld.WithRecorder(rec))
				return err
			}), nil
		},
	},
	{
		Name:     "trie",
		Title:    "Trie construction",
		Category: CategoryStructure,
		Defaults: Params{Words: []string{"tea", "ten", "to", "inn", "in"}},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if err := validate.Words(validate.WordsParams{Words: p.Words}); err != nil {
				return nil, err
			}

			return steps(func(rec trace.Recorder) error {
				_, err := trie.Build(p.Words, trie.WithRecorder(rec))
				return err
			}), nil
		},
	},
}

type graphInput struct {
	graph  *core.Graph
	source int
}

func mst(method, title string) Descriptor {
	return Descriptor{
		Name:     method,
		Title:    title,
		Category: CategoryGraph,
		Defaults: Params{Graph: graphParams(builder.MustRandomConnected(7, 12, 11), 0)},
		run: func(p Params) (iter.Seq[trace.Step], error) {
			if p.Graph.Directed || !p.Graph.Weighted {
				return nil, fmt.Errorf("%w: Graph: spanning trees need an undirected weighted graph", validate.ErrInvalidInput)
			}

			return graphRun(func(_ Params, rec trace.Recorder, in graphInput) error {
				_, err := prim_kruskal.Compute(in.graph, prim_kruskal.MSTOptions{
					Method:   method,
					Root:     in.source,
					Recorder: rec,
				})
				return err
			})(p)
		},
	}
}

// Catalog returns every descriptor in listing order.
func Catalog() []Descriptor {
	out := slices.Clone(catalog)
	for i := range out {
		out[i].Defaults = out[i].Defaults.Clone()
	}

	return out
}

// Names returns the catalog names in listing order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, d := range catalog {
		names[i] = d.Name
	}

	return names
}

// Lookup finds a descriptor by name.
func Lookup(name string) (Descriptor, error) {
	for _, d := range catalog {
		if d.Name == name {
			d.Defaults = d.Defaults.Clone()
			return d, nil
		}
	}

	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

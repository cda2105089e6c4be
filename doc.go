// Package stepviz is a step-by-step playground for classic algorithms:
// every run publishes its intermediate state as a sequence of snapshots that
// a front end can replay like an animation.
//
// 🚀 What is stepviz?
//
//	A set of small, dependency-light packages that bring together:
//		• Core primitives: a compact indexed graph (core) and generators (builder)
//		• Traversals: BFS, DFS, topological sort, Kosaraju SCC
//		• Shortest paths: Dijkstra with a tie-stable priority queue
//		• Minimum spanning trees: Prim, Kruskal
//		• Structures: union-find (dsu), prefix tree (trie), heavy-light decomposition (hld)
//		• Strings and search: KMP, N-Queens, Sudoku, palindrome partitioning
//		• Range queries: Mo's algorithm
//
// ✨ How a run looks
//
//   - An algorithm takes a trace.Recorder and publishes trace.Step values.
//   - Each step carries an Event, a base Delay, a message and a cloned Snapshot.
//   - The final step is trace.EventDone and carries the Result with its Outcome.
//   - When the Recorder refuses a step the algorithm unwinds at once.
//
// Layout:
//
//	trace/       Step, Event, Outcome, Recorder, Tape and the iter.Seq adapter
//	playback/    Session: pacing, speed multiplier, cancellation, hooks, metrics
//	core/        Graph, Edge and their sentinel errors
//	builder/     Path, Cycle, Star, Complete and random graph constructors
//	validate/    user-input checks (go-playground/validator) for every visualizer
//	visualizer/  catalog of named visualizers with demo inputs
//	config/      TOML settings for the CLI
//	cmd/stepviz  terminal front end (list, run)
//
// Quick start:
//
//	d, _ := visualizer.Lookup("dijkstra")
//	steps, _ := d.RunDefaults()
//	for st := range steps {
//		fmt.Println(st.Seq, st.Event, st.Message)
//	}
//
//	go install github.com/katalvlaran/stepviz/cmd/stepviz@latest
package stepviz

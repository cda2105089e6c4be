// Package playback governs the pace at which published steps are revealed.
//
// A Session pulls steps from an iter.Seq[trace.Step] produced by trace.Steps,
// stores the latest one for the presentation layer, and then suspends for
// step.Delay / speed. The speed multiplier is read at the moment of each
// suspension, so changing it mid-run affects the next pause only.
//
// Run protocol:
//
//   - At most one run is active per Session. Play returns ErrRunActive while
//     another run is in flight.
//   - Replace cancels the active run, waits until it has fully terminated, and
//     only then starts the new one.
//   - Cancel is cooperative. The cancellation flag is checked at every
//     suspension point; once set, the Session stops pulling steps, the core
//     observes Publish == false and unwinds. Play then returns a Report with
//     Completed == false and Outcome == trace.OutcomeCancelled, without error.
//   - The observed sequence is always a prefix of the full step sequence, and
//     speed never changes step order or the final result.
//
// Observability:
//
//   - WithLogger installs a charmbracelet/log logger (silent by default).
//   - WithHooks installs Hooks; NewMetrics provides a Prometheus-backed
//     implementation.
//   - WithSleeper replaces the real timer, which keeps tests instantaneous.
package playback

// Package trace is the channel through which an algorithm core publishes an
// ordered sequence of immutable snapshots describing what changed and why.
//
// Overview:
//
//   - A core receives a Recorder and wraps it in an Emitter.
//   - At every semantically meaningful point the core calls Emitter.Emit with
//     an Event, a call-site base delay, a human-readable message and a State
//     value that fully describes the observable algorithm state.
//   - Emit returns false once the Recorder has asked to stop. From then on the
//     core must stop publishing and unwind, returning a partial result whose
//     Outcome is OutcomeCancelled. Cancellation is cooperative: a core is never
//     interrupted between two Emit calls.
//   - The last step of a completed run has Event == EventDone and carries the
//     algorithm's Result as State.
//
// Ordering guarantees:
//
//   - Seq starts at 0 and increases by one per published step.
//   - A stopped run publishes a strict prefix of the steps the run would have
//     published if it had completed; nothing is skipped or reordered.
//   - Base delays only describe pacing. They never influence step order.
//
// Recorders:
//
//	Tape      – collects every step in memory, optionally stopping after Limit steps.
//	Discard   – drops everything and never stops (plain, non-instrumented runs).
//	RecorderFunc – adapts a func(Step) bool.
//	Steps(run)   – turns a core into an iter.Seq[Step] generator; breaking out of
//	               the range loop stops the core.
package trace

// Package journal is a strand extension that records every pump lifecycle
// event as an ordered, structured entry.
//
// A [Recorder] implements the hook interfaces and appends one [Entry] per
// observed action. Test harnesses assert on the snapshot; replay and debug
// tools export it through a [Codec] (JSON or MessagePack).
//
// # Usage
//
//	rec := journal.NewRecorder()
//	ctx, _ := strand.New(strand.WithHook(rec))
//	ctx.Submit(func(any) { /* ... */ }, nil)
//	ctx.RunAll()
//
//	for _, e := range rec.Snapshot() {
//	    fmt.Println(e.Index, e.Action, e.Seq)
//	}
//
// # Selective recording
//
//	journal.NewRecorder(
//	    journal.WithActions(journal.ActionSubmitted, journal.ActionDrained),
//	)
package journal

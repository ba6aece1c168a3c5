// Package builder separates the order in which a product is assembled from the
// way each assembly step is carried out.
//
// A Builder exposes five fire-and-forget steps (Start, Step1, Step2, Step3 and
// Reset). A Director knows three fixed recipes and only sequences calls; what a
// step or a mid-recipe Reset does to partially built state is entirely up to
// the concrete Builder.
//
// Recipes
//
//   - BuildTypeA: Start → Step1 → Step2 → Step3
//   - BuildTypeB: Start → Step1 → Step3        (Step2 skipped)
//   - BuildTypeC: Start → Step2 → Reset → Step3
//
// The package also ships two small builders:
//
//   - Recorder: records every step it receives. Handy as a test double and for
//     showing which recipe produced which sequence.
//   - LoggingBuilder: wraps any Builder and logs each step through zap before
//     forwarding it.
//
// Example
//
//	rec := builder.NewRecorder()
//	var d builder.Director
//	d.BuildTypeC(builder.NewLoggingBuilder(rec, logger))
//	rec.Steps() // [start step2 reset step3]
package builder

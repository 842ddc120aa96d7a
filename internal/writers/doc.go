// Package writers owns the on-disk output of a run.
//
// Design:
//   • A FileSet groups the output files of one run: either every file is
//     written and committed, or every file the set created is removed again.
//   • Serialization itself lives in taxdump-core/dump; writers only manage
//     file lifecycle.
//   • IsBrokenPipe lets stdout-bound paths treat a closed consumer (head,
//     less) as success rather than failure.
package writers

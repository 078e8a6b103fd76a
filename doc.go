// Package dbg renders arbitrary runtime values as call-site-annotated debug
// output, plus a handful of independent data-munging helpers.
//
// The central piece is the structural encoder: [Encode] walks any value in a
// single pass and produces a tree composed only of nil, bools, numbers,
// strings, sequences, and string-keyed mappings. [JSONEncode] serializes
// that tree as JSON with literal \n sequences unescaped into real newlines,
// trading strict JSON validity for readable multi-line values. [YAMLEncode]
// serializes the same tree as YAML.
//
// # Encoding
//
// Values are rendered by the first matching rule:
//
//   - primitives pass through unchanged
//   - [time.Time] renders as "YYYY-MM-DD HH:MM:SS" (second precision, no
//     timezone)
//   - errors render as their %+v text, the stack trace when one is carried
//   - [fmt.Stringer] values render as their String() output
//   - [Fielder] values render as {"class": <type name>} merged with their
//     declared fields
//   - slices, arrays, and maps recurse; map keys are sorted for determinism
//   - channels and iter.Seq/iter.Seq2 functions are drained into a sequence
//     first, consuming them exactly once
//   - everything else falls back to its %v form — no value fails to render
//
// Cyclic values are out of scope; traversal assumes a finite acyclic graph.
//
// # Capability Interfaces
//
// Rather than reflecting over arbitrary struct fields, the encoder uses
// explicit opt-in capabilities:
//
//   - [fmt.Stringer] — a meaningful custom textual form
//   - [Fielder] — the fields an object wants serialized, in order
//
// A type implementing neither renders through the %v fallback.
//
// # Decoding
//
// [JSONDecode] is the best-effort inverse. A mapping carrying a "class" key
// is reconstructed through a [Registry] populated at initialization:
//
//	reg := dbg.NewRegistry()
//	reg.Register("Foo", func(fields map[string]any) (any, error) { ... })
//	v, err := dbg.JSONDecode(s, reg)
//
// Unregistered names fail with [ErrTypeNotFound]; constructors rejecting
// their fields fail with [ErrConstructorMismatch]. Untagged documents decode
// to plain maps and slices, and round-trip structurally for the
// primitive/container subset.
//
// # Call-Site Printing
//
// [FormatAt] prefixes serialized values with the caller's project-relative
// file path and line:
//
//	internal/worker/pool.go:87   {"class":"Job","id":4}
//
// [Dump] prints to stdout, [Err] to stderr, [Fdump] to an injected writer,
// and [Log] appends to log.txt in the working directory. All are thin
// wrappers over FormatAt.
//
// # Helpers
//
// Independent, stateless utilities with no shared machinery:
//
//   - [Call] — run a shell command, return stdout lines
//   - [ChunksList], [ChunksMap] — lazy fixed-size chunking
//   - [ReadCSV], [ReadCSVDict], [WriteCSV] — delimiter-sniffing table I/O
//   - [SortTable], [FormatTable] — column sort and aligned rendering
//   - [Summarise] — value-frequency counts
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrTypeNotFound] — class tag names an unregistered type
//   - [ErrConstructorMismatch] — decoded fields rejected by the constructor
//   - [ErrShapeMismatch] — CSV rows disagree with the header's column count
package dbg

// # go-docrst
//
// `go-docrst` renders makedoc-style documentation blocks as
// reStructuredText. It is the conversion step between a tokenizer that has
// already split a C source comment into `(command, text)` pairs and the
// `.rst` pages that Sphinx builds.
//
// Key capabilities:
//
//   - render `FUNCTION` blocks as a section title with hidden target and
//     `.. index::` entries for every function name and the summary.
//   - wrap `SYNOPSIS`, `ANSI_SYNOPSIS`, `TRAD_SYNOPSIS` and `TYPEDEF` bodies in
//     `.. code-block:: c` under a bold label.
//   - render `DESCRIPTION`, `RETURNS`, `ERRORS`, `NOTES` and friends as bold
//     labeled paragraphs, turning `<<x>>` into emphasis and `<[x]>` into
//     inline code.
//   - skip structural markers (`START`, `END`, `INDEX`, `NEWPAGE`, ...) and
//     report unknown commands on stderr without stopping the run.
//
// ## Usage
//
//	go run . [flags] [file...]
//
// Input files hold a YAML or JSON list of blocks:
//
//	- command: FUNCTION
//	  text: "*abs* --- integer absolute value"
//	- command: SYNOPSIS
//	  text: "int abs(int <[i]>);"
//
// Examples:
//
//   - Render a file to stdout:
//
//     go run . ./testdata/abs.yaml
//
//   - Render several files into one page and fail on unknown commands:
//
//     go run . -strict -o docs/abs.rst abs.yaml labs.yaml
//
//   - Try a single block:
//
//     go run . convert RETURNS 'The result is <<0>>.'
//
// ## Supported Flags
//
//   - `-o FILE`: write reStructuredText to `FILE` (stdout when omitted).
//   - `-strict`: exit non-zero after rendering if any command was skipped.
//   - `-config FILE`: read settings from `FILE` instead of searching for
//     `docrst.*`.
//   - `-log-level`, `-log-format`: tune diagnostics (`console`, `json`,
//     `pretty`).
//
// ## Configuration
//
// Settings resolve as defaults < config file < `GODOCRST_*` environment
// variables < flags. `go-docrst config show` prints the result.
package main

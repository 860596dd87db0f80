// Package cli implements the bladr command-line interface.
//
// Commands are the application's only input layer: they validate flag
// ranges and vocabularies, resolve dates, and run confirmation prompts
// before handing clean payloads to the diary editor. Output is text by
// default or a stable JSON envelope with --format json.
package cli

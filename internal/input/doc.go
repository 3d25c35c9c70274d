// Package input turns files and standard input into sequences for the enumx
// commands.
//
// Lines are read lazily with LineReader. Key-value pairs are loaded eagerly
// by LoadPairs from YAML or CUE files, keeping the order they were written
// in. KeyFunc builds the comparison keys used when de-duplicating or
// grouping lines.
package input

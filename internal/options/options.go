// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input program file"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.txt)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug   bool `flag:"debug" usage:"enable debug logging of every executed instruction"`
	Listing bool `flag:"listing" usage:"write a disassembly listing of the program before searching"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
}

// Program options of the phase search.
type Program struct {
	Parameters
	Flags
}

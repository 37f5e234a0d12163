// Package doxygen synthesizes the configuration stream fed to Doxygen and runs it.
//
// Doxygen honors the last occurrence of a repeated setting, so overrides are
// appended after the unmodified base Doxyfile instead of editing it. The
// resulting stream is written to the generator's stdin and the generator is
// invoked as `<DOXYGEN_PROG> -`, which tells it to read its configuration
// from stdin.
package doxygen

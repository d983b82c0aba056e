// Package order implements the interactive order loop: it prompts for item
// names one line at a time, matches each against a menu regardless of case,
// and prints the running total after every match until input runs out.
package order

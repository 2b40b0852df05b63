// Package srcline carries a source line through the preprocessor and both
// assembly passes without losing track of where it came from.
package srcline

// Line is one line of input text tagged with the file and line number a
// diagnostic should blame for it. Lines coming out of a macro body carry
// the use-site's line number, not the line number inside the macro
// definition, so error messages always point at code the user wrote.
type Line struct {
	File string
	Num  int
	Text string
}

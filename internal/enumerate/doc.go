// Package enumerate measures directory entries for lrgest.
//
// An Enumerator returns `<bytes>\t<path>` records, largest first, restricted
// to a requested line window. The first line of the unrestricted output is
// the directory's own total. Walker measures in-process using fastwalk for
// parallel traversal; Exec delegates to the du, sort, tac and sed programs.
package enumerate

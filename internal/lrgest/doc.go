// Package lrgest ranks measured filesystem entries by size.
//
// It parses the user's range specification into a selection Policy,
// derives the line window to request from an enumerator, turns the
// returned `<bytes> <path>` records into ranked entries and scales
// byte counts into human-readable units.
package lrgest

// Package chainfile reads weighted graphs written as chains, one chain per line:
//
//	Boston,Albany,170,Buffalo,290,Cleveland,190
//
// The first field is a vertex; every following (vertex, weight) pair adds an
// edge from the previous vertex to the new one. The line above therefore
// yields Boston-Albany (170), Albany-Buffalo (290) and Buffalo-Cleveland (190).
//
// Blank lines and lines starting with the comment character (default '#') are
// skipped. Fields are trimmed of surrounding spaces unless WithTrimSpace(false)
// is given; standard CSV quoting applies, so labels may contain the delimiter
// when quoted.
//
// Error Conditions
//
//   - ErrMalformedLine (as *LineError): fewer than three fields, a vertex with
//     no weight after it, an empty label or unparsable CSV.
//   - ErrBadWeight (as *LineError): a weight that is not a base-10 int64.
//   - I/O errors from the reader or from opening the file, wrapped.
package chainfile

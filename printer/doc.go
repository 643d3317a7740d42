// Package printer renders a []homology.HomologyGroup as output lines: one
// "H_k: Z^b[ x Z/d_1 Z]..." line per dimension. Grounded on
// original_source/src/homology.rs's Display impl ("Z^{free}" followed by
// " x Z/{d}Z" per torsion factor), kept byte-for-byte compatible rather
// than translated loosely.
package printer

// Package benchmark compares writelog with other Go logging libraries.
//
// Every framework writes plain text lines to the same discarding sink
// so that only formatting and dispatch cost is measured. It lives in
// its own module to keep the competitors out of writelog's go.mod.
package benchmark

// Package statsview serves Go runtime statistics over HTTP while the
// emulator runs. The server is compiled in only with the statsview build
// tag; without it Launch reports that nothing is available.
//
// Charts are served at localhost:12600/debug/statsview and pprof data at
// localhost:12600/debug/pprof/.
package statsview

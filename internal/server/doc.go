// Package server runs the startup sequence of the admin dashboard API.
//
// The [Sequencer] connects to the document database first and opens the
// HTTP listener only once that connection succeeded. A failed connection
// is logged and leaves the process without a listening socket.
package server

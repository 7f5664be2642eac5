// Package terminal provides the host-terminal collaborators for termrender:
// physical size query with a fixed fallback, screen setup and restore,
// color capability detection, and pre-allocated ANSI sequence fragments
// with append-style emitters.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: xterm-compatible terminals.
package terminal

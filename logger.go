// seehuhn.de/go/phantom - synthetic test images for image reconstruction
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package phantom

import (
	"log/slog"
	"sync/atomic"
)

// current holds the logger for render diagnostics. It is nil until
// SetLogger installs a logger; Logger then falls back to silent.
var current atomic.Pointer[slog.Logger]

var silent = slog.New(slog.DiscardHandler)

// SetLogger installs the logger which receives render diagnostics.
// Rendering writes one [slog.LevelDebug] record per call, with the canvas
// size, the number of shapes and workers, and the elapsed time.
// Passing nil turns logging off again, which is also the initial state.
//
// SetLogger may be called while other goroutines are rendering.
func SetLogger(l *slog.Logger) {
	current.Store(l)
}

// Logger returns the logger installed by [SetLogger], or a logger which
// discards everything.
func Logger() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}
	return silent
}

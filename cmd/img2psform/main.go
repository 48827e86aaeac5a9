// seehuhn.de/go/psgen - a library for writing images as PostScript forms
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

// Img2psform converts an image file into a PostScript form resource.
//
// Usage:
//
//	img2psform [flags] input [output]
//
// If no output file is given, the PostScript code is written to standard
// output.  Settings can also be given in a YAML configuration file (see
// the --config flag) or in environment variables with prefix PSFORM_,
// for example PSFORM_LEVEL=2.  The command "img2psform config" shows the
// effective configuration.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "img2psform:", err)
		}
		os.Exit(1)
	}
}

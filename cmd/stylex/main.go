/*
Command stylex resolves extends of YAML style sheets.

Usage:

    stylex resolve sheet.yaml --data theme=dark

prints the style sheet with every extend resolved. See 'stylex --help'.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import "os"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

/*
File    : lumen/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package file provides the host-level source loading the CLI entrypoint
// needs to run a script file. File I/O as a callable the interpreted
// language itself can invoke (fopen/fread/fwrite/...) is out of scope:
// there is no collaborator abstraction in this language for a script to
// hold an open handle across statements, so host file access stays a CLI
// concern rather than a builtin.
package file

import "os"

// ReadSource reads the script at path and returns its contents. The
// returned error is the raw *os.PathError/*fs.PathError from the
// standard library; the CLI entrypoint is responsible for presenting it.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

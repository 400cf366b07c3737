//go:build !unix

package terminal

import "golang.org/x/term"

func getSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

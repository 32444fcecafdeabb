//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

const Address = ""

func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available: rebuild with -tags statsview")
}

func Available() bool { return false }

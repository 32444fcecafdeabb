//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

const (
	Address = "localhost:12600"
	path    = "/debug/statsview"
)

// Launch starts the stats server in its own goroutine.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		statsview.New().Start()
	}()
	fmt.Fprintf(output, "stats server available at http://%s%s\n", Address, path)
}

// Available reports whether Launch starts a server.
func Available() bool { return true }

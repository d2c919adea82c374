/*
Package locate resolves locations on the local file system, most notably the
directory of the repository to paint into.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package locate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'graffiti.locate'.
func tracer() tracing.Trace {
	return tracing.Select("graffiti.locate")
}

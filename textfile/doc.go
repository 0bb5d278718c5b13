/*
Package textfile loads UTF-8 text files line by line into a Buffer.

Opening the file is done synchronously, reading it happens in the
background. Lines are appended in batches to an array of sstring.Strings
guarded by a read-write lock, so a Buffer can be read while it is still
growing. Clients interested in the loading progress subscribe to a
broadcast of Progress messages.

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

// diag writes failure diagnostics in the "<op> error: <message>" form
package diag

import (
	"io"
	"log"
	"os"
)

var std = log.New(os.Stdout, "", 0)

// SetOutput redirects diagnostics, tests point this at a buffer.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Error logs a failed operation along with the library's error message
func Error(op string, err error) {
	std.Printf("%s error: %v", op, err)
}

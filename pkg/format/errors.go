// ABOUTME: Resolver error types
// ABOUTME: InvalidFormatError names the rejected preference token
package format

import "fmt"

// InvalidFormatError is returned by SetPreferredFormats for a token outside
// the allowed extension set
type InvalidFormatError struct {
	Format string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid audio format %q (supported: mp3, wav, ogg, m4a, aac)", e.Format)
}

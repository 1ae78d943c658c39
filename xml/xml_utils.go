package xml

const (
	leftAngleBracket  = '<'
	rightAngleBracket = '>'
	forwardSlash      = '/'
	colon             = ':'
	equals            = '='
	quote             = '"'
)

// writer is the subset of bytes.Buffer the encoder writes through.
type writer interface {
	Write(p []byte) (n int, err error)
	WriteRune(r rune) (n int, err error)
	WriteString(s string) (n int, err error)
}

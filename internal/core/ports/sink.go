package ports

// Sink is the synchronized destination for subprocess output. It is the
// only writer of the combined build log; every emitted line is atomic,
// so concurrent tasks can never interleave a prefix with another task's
// content.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type Sink interface {
	// Line emits one normal output line under the given prefix.
	Line(prefix, line string)

	// ErrLine emits one error line: prefix, an [ERR] marker, then the content.
	ErrLine(prefix, line string)
}

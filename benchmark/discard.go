package benchmark

// discardSink counts bytes and drops them. It is used instead of
// io.Discard so that no framework can special-case the writer.
type discardSink struct {
	n int64
}

func (d *discardSink) Write(p []byte) (int, error) {
	d.n += int64(len(p))
	return len(p), nil
}

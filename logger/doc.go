// Package logger is the public API of writelog. Most users only need to
// import this package.
//
// A WriteLogger renders records with a formatter.TextFormatter into a
// single io.Writer. Its level, configuration and sink are fixed at
// construction. Log may be called from any number of goroutines: a
// mutex gives one record at a time exclusive use of the sink, so lines
// never interleave.
//
//	l := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithSink(sink.Stdout()).
//	    Build()
//
// A logger can be used on its own, or registered once as the process
// wide logger behind the package-level functions:
//
//	if err := l.Register(); err != nil {
//	    panic(err)
//	}
//	logger.Infof("listening on %s", addr)
//
// Registration is permanent; a second Register or SetLogger call fails
// with ErrAlreadyInstalled. Until a logger is registered the global max
// level is OffLevel and the package-level functions discard everything.
//
// Level checks happen before any formatting, so filtered-out records
// cost a comparison and nothing else.
package logger

package logging

// tracer is implemented by loggers with a level below debug
type tracer interface {
	Trace(msg string, fields ...interface{})
}

// WailsLoggerAdapter routes the Wails runtime's log output into a Logger.
// Entries are tagged source=wails so they can be told apart from tile output.
type WailsLoggerAdapter struct {
	logger Logger
	trace  func(msg string, fields ...interface{})
}

// NewWailsLoggerAdapter creates the adapter. Wails trace output goes to the
// logger's trace level when it has one and to debug otherwise.
func NewWailsLoggerAdapter(logger Logger) *WailsLoggerAdapter {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	a := &WailsLoggerAdapter{logger: logger, trace: logger.Debug}
	if t, ok := logger.(tracer); ok {
		a.trace = t.Trace
	}
	return a
}

// Print is Wails' unlevelled output; it is mostly startup chatter, so it is
// kept at debug.
func (w *WailsLoggerAdapter) Print(message string) {
	w.logger.Debug(message, "source", "wails")
}

func (w *WailsLoggerAdapter) Trace(message string) {
	w.trace(message, "source", "wails")
}

func (w *WailsLoggerAdapter) Debug(message string) {
	w.logger.Debug(message, "source", "wails")
}

func (w *WailsLoggerAdapter) Info(message string) {
	w.logger.Info(message, "source", "wails")
}

func (w *WailsLoggerAdapter) Warning(message string) {
	w.logger.Warn(message, "source", "wails")
}

func (w *WailsLoggerAdapter) Error(message string) {
	w.logger.Error(message, "source", "wails")
}

// Fatal is logged as an error marked fatal; exiting is left to Wails.
func (w *WailsLoggerAdapter) Fatal(message string) {
	w.logger.Error(message, "source", "wails", "fatal", true)
}

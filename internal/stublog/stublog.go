// Package stublog provides the stub's logging sink. The original
// camkes-tool gdb.c logs through ZF_LOGD/ZF_LOGW/ZF_LOGE/ZF_LOGF; the
// emulator teacher logs the same call sites with plain
// fmt.Fprintln(os.Stderr, ...). This package keeps the teacher's terse,
// connection/command-scoped call sites but routes them through a
// structured zap logger, the way the pack's own GDB-stub-adjacent
// manifests (e.g. rtsh13-friday) use zap for a service's logging.
package stublog

import "go.uber.org/zap"

// Logger is the narrow subset of *zap.SugaredLogger the stub core
// needs: debug-level tracing of command handling, warnings for
// recoverable protocol oddities, and errors for frame/delegate
// failures. Kept as an interface so tests can inject a no-op logger
// without pulling in zap's test observer machinery.
type Logger interface {
	Debugf(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
}

// New builds a production logger at the given level ("debug", "info",
// "warn", "error"), matching the loglevel flag the emulator teacher
// exposes for its own component.
func New(level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop is a Logger that discards everything, used by tests.
type nop struct{}

func (nop) Debugf(string, ...any) {}
func (nop) Warnf(string, ...any)  {}
func (nop) Errorf(string, ...any) {}

// Nop returns a Logger that discards all output.
func Nop() Logger { return nop{} }

var _ Logger = (*zap.SugaredLogger)(nil)

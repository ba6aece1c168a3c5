package builder

import "go.uber.org/zap"

var _ Builder = (*LoggingBuilder)(nil)

// LoggingBuilder logs each step at debug level and then forwards it to the
// wrapped Builder.
type LoggingBuilder struct {
	next   Builder
	logger *zap.Logger
}

// NewLoggingBuilder wraps next. A nil logger disables logging.
func NewLoggingBuilder(next Builder, logger *zap.Logger) *LoggingBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingBuilder{next: next, logger: logger}
}

func (l *LoggingBuilder) Start() {
	l.log(StepStart)
	l.next.Start()
}

func (l *LoggingBuilder) Step1() {
	l.log(Step1)
	l.next.Step1()
}

func (l *LoggingBuilder) Step2() {
	l.log(Step2)
	l.next.Step2()
}

func (l *LoggingBuilder) Step3() {
	l.log(Step3)
	l.next.Step3()
}

func (l *LoggingBuilder) Reset() {
	l.log(StepReset)
	l.next.Reset()
}

func (l *LoggingBuilder) log(s Step) {
	l.logger.Debug("builder step", zap.Stringer("step", s))
}

package log

func Debugf(format string, v ...any) {
	logger.Debug().Msgf(format, v...)
}

func Warnf(format string, v ...any) {
	logger.Warn().Msgf(format, v...)
}

func Errorf(format string, v ...any) {
	logger.Error().Msgf(format, v...)
}

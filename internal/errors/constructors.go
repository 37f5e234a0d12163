package errors

import (
	"fmt"

	"git.home.luguber.info/inful/doxyrun/internal/logfields"
)

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Config file '%s' could not be read", path)).
		WithContext(logfields.KeyPath, path)
}

func ConfigMalformed(path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Config file '%s' could not be parsed", path)).
		WithContext(logfields.KeyPath, path)
}

func SectionMissing(section string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Section '%s' is missing in config file", section)).
		WithContext(logfields.KeySection, section)
}

func ParameterMissing(key string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Parameter '%s' is missing in config file", key)).
		WithContext(logfields.KeyKey, key)
}

func ParameterEmpty(key string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Parameter '%s' is empty", key)).
		WithContext(logfields.KeyKey, key)
}

func EnvFileFailed(path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryConfig, SeverityFatal, fmt.Sprintf("Environment file '%s' could not be loaded", path)).
		WithContext(logfields.KeyPath, path)
}

// Filesystem errors

func FilterWriteFailed(path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filter script could not be written").
		WithContext(logfields.KeyPath, path)
}

func DoxyfileReadFailed(path string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "Doxyfile could not be read").
		WithContext(logfields.KeyPath, path)
}

// Generator errors

func GeneratorFailed(prog string, cause error) *ClassifiedError {
	return Wrap(cause, CategoryGenerator, SeverityError, "documentation generator failed").
		WithContext(logfields.KeyProgram, prog)
}

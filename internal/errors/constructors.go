package errors

// Convenience functions for common error patterns

// Config errors

func ConfigNotFound(path string) *CrossrefError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *CrossrefError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Registry build errors

func DocumentReadError(path string, cause error) *CrossrefError {
	return Wrap(cause, CategoryFileSystem, SeverityError, "failed to read document").
		WithContext("path", path)
}

func DocumentParseError(doc string, cause error) *CrossrefError {
	return Wrap(cause, CategoryParse, SeverityError, "failed to parse document").
		WithContext("document", doc)
}

func RegistryScanError(dir string, cause error) *CrossrefError {
	return Wrap(cause, CategoryRegistry, SeverityFatal, "registry scan failed").
		WithContext("dir", dir)
}

// Store errors

func StoreOpenError(path string, cause error) *CrossrefError {
	return Wrap(cause, CategoryStore, SeverityFatal, "failed to open registry store").
		WithContext("path", path)
}

func StoreQueryError(operation string, cause error) *CrossrefError {
	return Wrap(cause, CategoryStore, SeverityError, "registry store operation failed").
		WithContext("operation", operation)
}

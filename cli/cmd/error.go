package cmd

import "github.com/ardnew/cppstamp/stamp"

// Errors returned by the commands. Derived errors carry the file, flag or
// format involved as log attributes and match these with [errors.Is].
var (
	ErrJSONMarshal   = stamp.NewError("marshal JSON")
	ErrYAMLMarshal   = stamp.NewError("marshal YAML")
	ErrWriteConfig   = stamp.NewError("write configuration file")
	ErrFileExists    = stamp.NewError("file exists (use --force to overwrite)")
	ErrTimezone      = stamp.NewError("unknown time zone")
	ErrNoRequests    = stamp.NewError("no IDENT=EXPR assignments given")
	ErrNamespace     = stamp.NewError("conflicting namespaces")
	ErrIncomplete    = stamp.NewError("not every assignment was applied")
	ErrReadSource    = stamp.NewError("read source file")
	ErrWriteReport   = stamp.NewError("write report")
	ErrUnknownFormat = stamp.NewError("unknown report format")
)

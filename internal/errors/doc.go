// Package errors provides structured, actionable error messages for the
// mirror command.
//
// # Error Codes
//
// Each error has a unique code that maps to a short message and a detailed
// explanation:
//   - M001-M099: conversion failures reported by node registries
//   - M101-M199: configuration file problems
//   - M201-M299: invalid command input
//
// # Usage
//
//	err := errors.New("M103").
//	    WithLocation("mirror.yaml", 3).
//	    WithSuggestion(`identities must be "uuid" or "sequence"`)
//
//	fmt.Print(err.Format())
//
// FromError turns library errors into coded ones; a *convert.ConversionError
// becomes M001, or M002 when it came from the nesting guard.
package errors

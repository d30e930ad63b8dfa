package domain

import (
	"errors"
	"fmt"
)

// Catalog errors.
var (
	ErrKeyNotFound  = errors.New("message key not found")
	ErrUnknownKind  = errors.New("unknown catalog kind")
	ErrInvalidEntry = errors.New("invalid catalog entry")
)

// KeyNotFoundError is returned when a lookup references a key that is not
// part of the catalog. It signals a caller bug, not a user-facing failure.
type KeyNotFoundError struct {
	Kind   Kind
	Key    Key
	Locale string
}

func (e *KeyNotFoundError) Error() string {
	if e.Locale == "" {
		return fmt.Sprintf("%s: %s.%s", ErrKeyNotFound, e.Kind, e.Key)
	}
	return fmt.Sprintf("%s: %s.%s (locale %s)", ErrKeyNotFound, e.Kind, e.Key, e.Locale)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// Code classifies a failure raised by the editor that has a dialog attached.
type Code string

const (
	CodeSceneParse  Code = "scene_parse"
	CodeSceneLoad   Code = "scene_load"
	CodePrefabParse Code = "prefab_parse"
	CodePrefabLoad  Code = "prefab_load"
	CodeProjectOpen Code = "project_open"
	CodeNoProject   Code = "no_project"
	CodeAssetImport Code = "asset_import"
)

// Failure tags an underlying error with the code of the dialog describing it.
type Failure struct {
	Code Code
	Err  error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return string(f.Code)
	}
	return fmt.Sprintf("%s: %v", f.Code, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Fail wraps err with code. err may be nil when the code says it all.
func Fail(code Code, err error) error {
	return &Failure{Code: code, Err: err}
}

// CodeOf extracts the failure code from err's chain, or "" when none is set.
func CodeOf(err error) Code {
	var f *Failure
	if errors.As(err, &f) {
		return f.Code
	}
	return ""
}

// Cause returns the error wrapped by the outermost Failure in err's chain.
func Cause(err error) error {
	var f *Failure
	if errors.As(err, &f) {
		return f.Err
	}
	return err
}

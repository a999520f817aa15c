package regextract

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedDataType is matched by errors.Is for every
// *UnrecognizedDataTypeError.
var ErrUnrecognizedDataType = errors.New("unrecognized data type")

// UnrecognizedDataTypeError is returned by Extract when the requested
// category is not in the extractor's catalog. An empty result always
// means "no matches", never "unknown category".
type UnrecognizedDataTypeError struct {
	Name string
}

func (e *UnrecognizedDataTypeError) Error() string {
	return fmt.Sprintf("data type %q not recognized", e.Name)
}

// Is reports whether target is ErrUnrecognizedDataType.
func (e *UnrecognizedDataTypeError) Is(target error) bool {
	return target == ErrUnrecognizedDataType
}

// DuplicateCategoryError is returned by New when a custom pattern reuses
// a category name that is already defined.
type DuplicateCategoryError struct {
	Name string
}

func (e *DuplicateCategoryError) Error() string {
	return fmt.Sprintf("category %q is already defined", e.Name)
}

package aggregate

import "fmt"

// NoImagesFoundError reports a collection directory with no eligible image
// files. Empty input is a configuration error the caller must fix.
type NoImagesFoundError struct {
	Dir string
}

func (e *NoImagesFoundError) Error() string {
	return fmt.Sprintf("no eligible image files found in %s", e.Dir)
}

// NoDesignerDirectoriesError reports a season directory with no designer
// subdirectories.
type NoDesignerDirectoriesError struct {
	Dir string
}

func (e *NoDesignerDirectoriesError) Error() string {
	return fmt.Sprintf("no designer directories found in %s", e.Dir)
}

// PersistenceError reports a failure to write output JSON. It always
// propagates; silent loss of results is unacceptable.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

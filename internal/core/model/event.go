package model

// FileEvent describes a change to a staged data file.
type FileEvent struct {
	Path      string
	Operation string
}

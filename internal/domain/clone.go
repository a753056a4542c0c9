package domain

// CloneRequest asks for one submission to be cloned into the assignment directory
type CloneRequest struct {
	Assignment string
	Overwrite  bool // remove an existing clone before cloning again
	Submission Submission
}

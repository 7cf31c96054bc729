package storage

import "seek-trends/models"

// DatasetWriter is the interface any listing persistence backend must satisfy.
type DatasetWriter interface {
	WriteListings(path string, records []*models.JobRecord) error
}

// DescriptionCache is the surface the analysis and cache-fill components use
// to read and populate cached description text.
type DescriptionCache interface {
	Has(jobID string) bool
	Read(jobID string) (string, error)
	Write(jobID, text string) error
}

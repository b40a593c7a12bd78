package ports

import "github.com/aalvaropc/flowmap/internal/domain"

// DocumentSource loads the two input documents for a project (e.g., filesystem).
type DocumentSource interface {
	LoadDocuments(ref domain.ProjectRef) (domain.SourceDocs, error)
}

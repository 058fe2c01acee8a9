// Package media declares the boundary to the external project-photo
// capture service. The republishing pipeline itself lives outside this
// backend; the attendance core only shares the object-storage and webhook
// plumbing with it, so this package stays interface-only.
package media

import "context"

type Project struct {
	ID   string
	Name string
}

// Item is a single photo within a project section.
type Item struct {
	ID       string
	Section  string
	FileName string
	URL      string
}

// CaptureClient fetches projects and their media from the capture service.
type CaptureClient interface {
	ProjectByID(ctx context.Context, id string) (Project, error)
	ListMediaBySection(ctx context.Context, projectID, section string) ([]Item, error)
	FetchImage(ctx context.Context, item Item) ([]byte, error)
}

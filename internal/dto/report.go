package dto

// ReportFile is a rendered compliance report ready to be streamed.
type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
	Cached      bool
}

package dto

import "time"

type ExportOutput struct {
	Payload    []byte
	ExportedAt time.Time
}

type ImportInput struct {
	Payload []byte
}

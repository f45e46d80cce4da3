// Package model defines the core domain models used throughout the application.
package model

import "time"

// InboundMessage is a raw bank notification as delivered by the transport
// layer. It is immutable and consumed exactly once by the pipeline.
type InboundMessage struct {
	ReceivedAt time.Time
	Sender     string // sender identifier, e.g. "VM-HDFCBK" or a phone number
	Text       string // raw notification body
}

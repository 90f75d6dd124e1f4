package model

import "github.com/google/uuid"

// assignId gives new rows an id in Go so the schema works on any driver.
func assignId(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

package v1

import (
	pp_uuid "github.com/pocketplan/backend/internal/uuid"
)

type URIID struct {
	ID pp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	Month string `uri:"month" binding:"required" example:"2026-08"` // Year and month in YYYY-MM format
}

type URIMonthID struct {
	Month string       `uri:"month" binding:"required" example:"2026-08"`
	ID    pp_uuid.UUID `uri:"id" binding:"required" format:"UUID"`
}

// Pagination contains information about the pagination for collection endpoints
type Pagination struct {
	Count  int  `json:"count"`  // The amount of records returned in this response
	Offset uint `json:"offset"` // The offset for the first record returned
	Limit  int  `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int  `json:"total"`  // The total number of resources matching the query
}

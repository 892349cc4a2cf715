package domain

import "time"

// Column names of the collection sheet export.
const (
	ColumnZoneCode  = "Code Zone de recensement"
	ColumnIlot      = "Numero de l'ilot"
	ColumnAgentName = "Nom et prenoms"
	ColumnStartDate = "Date debut collecte"
	ColumnEndDate   = "Date fin collecte"
	ColumnLatitude  = "LATITUDE"
	ColumnLongitude = "LONGITUDE"
)

// CoreColumns must be present in every loaded table.
var CoreColumns = []string{
	ColumnZoneCode,
	ColumnIlot,
	ColumnAgentName,
	ColumnStartDate,
	ColumnEndDate,
}

// Represents one row of the collection sheet.
// Date fields are nil when the cell was empty or could not be parsed,
// and DurationDays is nil unless both dates are present.
// Latitude and Longitude keep the raw cell text; numeric coercion happens
// when a geographic view is built.
type CollectionRecord struct {
	ZoneCode     string
	IlotNumber   string
	AgentName    string
	StartDate    *time.Time
	EndDate      *time.Time
	Latitude     string
	Longitude    string
	DurationDays *int
	Extra        map[string]string
}

// RawTable is the untyped form of a sheet as returned by a table source.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Dataset is the full, immutable result of one refresh cycle.
type Dataset struct {
	Columns     []string
	Records     []CollectionRecord
	Fingerprint uint64
	LoadedAt    time.Time
}

// Len reports the number of records; a nil Dataset is empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// EmptyDataset is substituted whenever a load fails.
func EmptyDataset() *Dataset {
	return &Dataset{Records: []CollectionRecord{}}
}

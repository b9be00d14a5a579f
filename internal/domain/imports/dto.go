package imports

// ImportResult reports what a CSV import did. Rows counts the data lines
// seen (header and blanks excluded); Skipped counts short or unusable rows.
type ImportResult struct {
	BatchID  string `json:"batch_id"`
	Rows     int    `json:"rows"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}

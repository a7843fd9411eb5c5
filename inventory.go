package main

import "math"

// Drug is one inventory line: current stock and the average monthly
// consumption the runway is computed against.
type Drug struct {
	Name       string
	Stock      float64
	MonthlyUse float64
}

// Runway returns the months of stock remaining at the current consumption
// rate. No consumption means the stock never runs out.
func (d Drug) Runway() float64 {
	if d.MonthlyUse <= 0 {
		return math.Inf(1)
	}
	return d.Stock / d.MonthlyUse
}

// ListDrugs returns the inventory ordered by name.
func (d *Database) ListDrugs() ([]Drug, error) {
	rows, err := d.DB.Query("SELECT name, stock, monthly_use FROM drugs ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drugs []Drug
	for rows.Next() {
		var drug Drug
		if err := rows.Scan(&drug.Name, &drug.Stock, &drug.MonthlyUse); err != nil {
			return nil, err
		}
		drugs = append(drugs, drug)
	}
	return drugs, rows.Err()
}

// seedDrugs loads a starter inventory into an empty database so the
// dashboard has something to show before any real data is imported.
func (d *Database) seedDrugs() error {
	var count int
	if err := d.DB.QueryRow("SELECT COUNT(*) FROM drugs").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []Drug{
		{"Amlodipine 5mg", 950, 150},
		{"Amoxicillin 500mg", 1200, 400},
		{"Atorvastatin 20mg", 2200, 310},
		{"Levothyroxine 50mcg", 60, 120},
		{"Lisinopril 10mg", 300, 260},
		{"Metformin 850mg", 5400, 900},
		{"Omeprazole 20mg", 150, 480},
		{"Sertraline 50mg", 800, 200},
	}
	tx, err := d.DB.Begin()
	if err != nil {
		return err
	}
	for _, drug := range seed {
		if _, err := tx.Exec("INSERT INTO drugs (name, stock, monthly_use) VALUES (?, ?, ?)",
			drug.Name, drug.Stock, drug.MonthlyUse); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

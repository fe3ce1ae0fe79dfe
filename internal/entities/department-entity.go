package entities

import "github.com/aarondl/null/v8"

type Department struct {
	ID        uint64       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Manager   string       `json:"manager" db:"manager"`
	Email     string       `json:"email" db:"email"`
	Phone     string       `json:"phone" db:"phone"`
	SubUnits  []string     `json:"subUnits" db:"sub_units"`
	Budget    null.Float64 `json:"budget" db:"budget"`
	Employees null.Int     `json:"employees" db:"employees"`
}

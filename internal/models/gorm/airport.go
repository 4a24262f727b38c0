package gorm

// Airport is a row of the optional airport database. Seq keeps the order of
// the source file so searches scan in the same order as the JSON dataset.
type Airport struct {
	Seq       int64   `gorm:"column:seq;primaryKey" db:"seq"`
	IATA      string  `gorm:"column:iata;type:varchar(3);index" db:"iata"`
	Name      string  `gorm:"column:name;type:text;not null" db:"name"`
	City      string  `gorm:"column:city;type:varchar(100)" db:"city"`
	Country   string  `gorm:"column:country;type:varchar(100)" db:"country"`
	Latitude  float64 `gorm:"column:latitude;not null" db:"latitude"`
	Longitude float64 `gorm:"column:longitude;not null" db:"longitude"`
}

// TableName specifies the table name for GORM
func (Airport) TableName() string {
	return "airports"
}

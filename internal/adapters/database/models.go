package database

// MeasurementModel maps the pre-populated measurement table.
type MeasurementModel struct {
	ID      int      `gorm:"primaryKey"`
	Station string   `gorm:"not null"`
	Date    string   `gorm:"not null"`
	Prcp    *float64
	Tobs    float64
}

func (MeasurementModel) TableName() string {
	return "measurement"
}

// StationModel maps the pre-populated station table.
type StationModel struct {
	ID        int    `gorm:"primaryKey"`
	Station   string `gorm:"not null"`
	Name      string
	Latitude  float64
	Longitude float64
	Elevation float64
}

func (StationModel) TableName() string {
	return "station"
}

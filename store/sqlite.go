package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"careline/common/logger"
	"careline/schema"
)

// orderRow maps schema.OrderRecord onto the orders table for deployments
// that keep the dataset in SQLite instead of a JSON file.
type orderRow struct {
	OrderID     string `gorm:"column:order_id;primaryKey"`
	OrderType   string `gorm:"column:order_type"`
	PatientName string `gorm:"column:patient_name"`
	Status      string `gorm:"column:status"`
	Date        string `gorm:"column:date"`
	Time        string `gorm:"column:time"`
	Details     string `gorm:"column:details"`
	Location    string `gorm:"column:location"`
}

func (orderRow) TableName() string { return "orders" }

func (r orderRow) record() schema.OrderRecord {
	return schema.OrderRecord{
		OrderID:     r.OrderID,
		OrderType:   r.OrderType,
		PatientName: r.PatientName,
		Status:      r.Status,
		Date:        r.Date,
		Time:        r.Time,
		Details:     r.Details,
		Location:    r.Location,
	}
}

func openOrderDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
}

// LoadOrdersFromSQLite reads every order row from the SQLite database at
// path, preserving insertion order via rowid. Failures follow the same
// degrade-to-empty policy as the JSON loaders.
func LoadOrdersFromSQLite(path string) []schema.OrderRecord {
	db, err := openOrderDB(path)
	if err != nil {
		logger.Errorf("store: could not open order database %s: %v", path, err)
		return nil
	}

	var rows []orderRow
	if err := db.Order("rowid").Find(&rows).Error; err != nil {
		logger.Errorf("store: could not read orders from %s: %v", path, err)
		return nil
	}

	out := make([]schema.OrderRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.record())
	}
	logger.Infof("store: loaded %d orders from %s", len(out), path)
	return out
}

// SeedOrderDB creates the orders table at path and inserts the given
// records. Used by the import tooling and by tests; duplicate IDs are
// rejected by the primary key, matching the JSON loader's assumption that
// IDs are unique.
func SeedOrderDB(path string, records []schema.OrderRecord) error {
	db, err := openOrderDB(path)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&orderRow{}); err != nil {
		return err
	}
	for _, rec := range records {
		row := orderRow{
			OrderID:     rec.OrderID,
			OrderType:   rec.OrderType,
			PatientName: rec.PatientName,
			Status:      rec.Status,
			Date:        rec.Date,
			Time:        rec.Time,
			Details:     rec.Details,
			Location:    rec.Location,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

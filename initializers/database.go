package initializers

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/Kariqs/amexan-eats-api/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectToDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	gormLogger := newGormLogger(os.Stdout)
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// newGormLogger reports slow queries and real failures. A missing row is a
// normal outcome for lookups and is not logged.
func newGormLogger(w io.Writer) logger.Interface {
	return logger.New(log.New(w, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func SyncDatabase(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{}, &models.UserAddress{},
		&models.Restaurant{}, &models.RestaurantAddress{}, &models.Food{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{}, &models.Payment{},
		&models.FoodRatingAndReview{}, &models.RestaurantRatingAndReview{},
	)
	if err != nil {
		return fmt.Errorf("failed to sync database: %w", err)
	}
	return nil
}

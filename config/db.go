package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"resort-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "resort_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// ConnectDatabase opens the MySQL connection, runs migrations and seeds the
// catalog on first start. Sets config.DB on success.
func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	DB = db
	SeedDatabase(db)
	return nil
}

// Migrate applies the schema in parent->child order. Shared with the test
// harness, which runs against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Client{},
		&models.Room{},
		&models.Service{},
		&models.Booking{},
		&models.ServiceOrder{},
		&models.Review{},
	)
}

// SeedDatabase puts a minimal catalog in place when the tables are empty so
// a fresh deployment has something to show.
func SeedDatabase(db *gorm.DB) {
	var roomCount int64
	db.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Name: "Garden Single", Type: models.RoomTypeSingle, PricePerNight: 80, Capacity: 1, Status: models.RoomStatusAvailable, Description: "Cozy single room overlooking the garden"},
			{RoomNumber: "201", Name: "Seaview Double", Type: models.RoomTypeDouble, PricePerNight: 140, Capacity: 2, Status: models.RoomStatusAvailable, Description: "Double room with a sea view balcony"},
			{RoomNumber: "301", Name: "Royal Suite", Type: models.RoomTypeLuxury, PricePerNight: 320, Capacity: 4, Status: models.RoomStatusAvailable, Description: "Top floor suite with private terrace"},
		}
		if err := db.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var svcCount int64
	db.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		services := []models.Service{
			{Name: "Full Body Massage", Description: "60 minute relaxing massage", Price: 50, Category: models.ServiceCategorySpa, Duration: 60, IsAvailable: true},
			{Name: "Airport Transfer", Description: "Private car to or from the airport", Price: 35, Category: models.ServiceCategoryTransportation, Duration: 45, IsAvailable: true},
			{Name: "Sunset Dinner", Description: "Three course dinner on the beach", Price: 90, Category: models.ServiceCategoryDining, Duration: 120, IsAvailable: true},
		}
		if err := db.Create(&services).Error; err != nil {
			log.Printf("warning: failed to seed services: %v", err)
		} else {
			log.Println("Services seeded")
		}
	}
}

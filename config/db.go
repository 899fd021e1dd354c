package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"rental-backend/models"
	"rental-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

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
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// ResolveMySQLDSN reads MYSQL_URL / DATABASE_URL (mysql:// URL or raw DSN),
// falling back to the DB_* variables.
func ResolveMySQLDSN() (string, error) {
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

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "rental_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

// GormLogLevel maps DB_LOG_LEVEL (silent|error|warn|info) to a gorm log level.
func GormLogLevel() logger.LogLevel {
	switch strings.ToLower(utils.EnvOrDefault("DB_LOG_LEVEL", "warn")) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func NewGormLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  GormLogLevel(),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// Migrate creates or updates every table in parent -> child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func ConnectDatabase() error {
	dsn, err := ResolveMySQLDSN()
	if err != nil {
		return err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: NewGormLogger()})
	if err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(utils.EnvInt("DB_MAX_OPEN_CONNS", 20))
		sqlDB.SetMaxIdleConns(utils.EnvInt("DB_MAX_IDLE_CONNS", 10))
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		log.Printf("info: cannot get raw sql.DB: %v", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	if utils.EnvBool("SEED_DEMO") {
		if err := SeedDemo(DB); err != nil {
			log.Printf("warning: demo seed failed: %v", err)
		}
	}
	return nil
}

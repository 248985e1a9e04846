package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostel_admin_backend/internals/configs"
	gatelogModel "hostel_admin_backend/internals/features/security/gatelog/model"
	adminModel "hostel_admin_backend/internals/features/staff/admins/model"
	guardModel "hostel_admin_backend/internals/features/staff/security_guards/model"
	wardenModel "hostel_admin_backend/internals/features/staff/wardens/model"
	studentModel "hostel_admin_backend/internals/features/students/model"
	authModel "hostel_admin_backend/internals/features/users/auth/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] Connecting to PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=hostel_admin&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connect failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[ERROR] pool tune: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if configs.GetEnv("DB_AUTO_MIGRATE", "true") != "true" {
		log.Println("[INFO] Auto-migrate disabled")
		return nil
	}
	return db.AutoMigrate(
		&authModel.TokenBlacklist{},
		&adminModel.AdminModel{},
		&wardenModel.WardenModel{},
		&wardenModel.HostelModel{},
		&guardModel.SecurityGuardModel{},
		&studentModel.StudentModel{},
		&gatelogModel.LeaveRequestModel{},
	)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(); err != nil {
			log.Printf("[WARNING] warm-up ping: %v", err)
			return
		}
		var n int64
		if err := DB.Model(&gatelogModel.LeaveRequestModel{}).
			Where("active = ? AND security_status = ?", true, gatelogModel.SecurityStatusPending).
			Count(&n).Error; err != nil {
			log.Printf("[WARNING] warm-up query: %v", err)
			return
		}
		log.Printf("[INFO] warm-up done, %d pending requests", n)
	}()
}

// Ping reports whether the pool can reach the server.
func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

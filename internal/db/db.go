package db

import (
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
)

func InitDB(dbURL string) *sql.DB {
	db, err := sql.Open("mysql", dbURL)
	if err != nil {
		log.Fatal("Could not open database connection:", err)
	}

	err = db.Ping()
	if err != nil {
		log.Fatal("Database is not responding:", err)
	}

	log.Println("Connected to database")
	return db
}

func RunMigrations(db *sql.DB) {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL,
			business_name VARCHAR(100),
			phone_number VARCHAR(30),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			description TEXT,
			price VARCHAR(50) NOT NULL,
			quantity VARCHAR(50) NOT NULL,
			unit VARCHAR(50) NOT NULL,
			trade_option VARCHAR(20) NOT NULL,
			image_url VARCHAR(500),
			seller_id INT NOT NULL,
			seller_name VARCHAR(100) NOT NULL,
			version INT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_products_seller_id (seller_id),
			INDEX idx_products_created_at (created_at)
		);`,
		`CREATE TABLE IF NOT EXISTS resources (
			id INT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(200) NOT NULL,
			image_url VARCHAR(500) NOT NULL,
			price VARCHAR(50) NOT NULL,
			price_type VARCHAR(20) NOT NULL,
			availability VARCHAR(200) NOT NULL,
			` + "`condition`" + ` VARCHAR(20) NOT NULL,
			location VARCHAR(200) NOT NULL,
			description TEXT,
			owner_id INT NOT NULL,
			owner_name VARCHAR(100) NOT NULL,
			version INT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_resources_owner_id (owner_id),
			INDEX idx_resources_created_at (created_at)
		);`,
		`CREATE TABLE IF NOT EXISTS resource_requests (
			id INT AUTO_INCREMENT PRIMARY KEY,
			resource_id INT NOT NULL,
			resource_title VARCHAR(200) NOT NULL,
			requester_id INT NOT NULL,
			requester_name VARCHAR(100) NOT NULL,
			owner_id INT NOT NULL,
			owner_name VARCHAR(100) NOT NULL,
			message TEXT NOT NULL,
			start_date DATETIME NOT NULL,
			end_date DATETIME NOT NULL,
			payment_type VARCHAR(20) NOT NULL,
			payment_details TEXT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			version INT NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_requests_owner_id (owner_id),
			INDEX idx_requests_requester_id (requester_id),
			INDEX idx_requests_created_at (created_at)
		);`,
		`CREATE TABLE IF NOT EXISTS diagnoses (
			id VARCHAR(36) PRIMARY KEY,
			user_id INT NOT NULL,
			disease_name VARCHAR(200),
			confidence DECIMAL(5,4),
			output TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_diagnoses_user_id (user_id)
		);`,
		`CREATE TABLE IF NOT EXISTS diagnosis_reports (
			id INT AUTO_INCREMENT PRIMARY KEY,
			diagnosis_id VARCHAR(36) NOT NULL,
			comment TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (diagnosis_id) REFERENCES diagnoses(id) ON DELETE CASCADE
		);`,
	}

	for _, q := range queries {
		_, err := db.Exec(q)
		if err != nil {
			log.Fatal("Migration failed:", err)
		}
	}
	log.Println("Migrations completed")
}

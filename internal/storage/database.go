package storage

import (
	"database/sql"
	"log"

	_ "modernc.org/sqlite"
)

var db *sql.DB

func InitDB(path string) {
	var err error

	db, err = sql.Open("sqlite", path)
	if err != nil {
		log.Fatal("InitDB(): Failed to open database :", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatal("storage.InitDB(): Failed to connect to database: ", err)
	}

	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"username" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL
	);`
	createHistoryTable := `
	CREATE TABLE IF NOT EXISTS history (
			"id" INTEGER PRIMARY KEY AUTOINCREMENT,
			"user_id" INTEGER NOT NULL,
			"filename" TEXT NOT NULL,
			"prediction" TEXT NOT NULL,
			"advice" TEXT NOT NULL,
			"audio_path" TEXT NOT NULL,
			"created_at" TEXT NOT NULL,
			FOREIGN KEY(user_id) REFERENCES users(id)
	)`

	if _, err := db.Exec(createUsersTable); err != nil {
		log.Fatalf("InitDB(): Failed to create users table: %v", err)
	}
	if _, err := db.Exec(createHistoryTable); err != nil {
		log.Fatalf("InitDB(): Failed to create history table: %v", err)
	}
	log.Println("InitDB(): Init and create table successfully!")
}

package main

import (
	"database/sql"
	"flag"
	"log"

	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/seeders"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИСТЕМА СИДЕРОВ (Наполнение БД)           ")
	log.Println("======================================================")

	runMigrate := flag.Bool("migrate", false, "Применить миграции схемы (goose up)")
	runDemo := flag.Bool("demo", false, "Наполнить базу демонстрационными данными")
	runAll := flag.Bool("all", false, "Миграции + демо-данные (эквивалентно -migrate -demo)")

	flag.Parse()

	if !*runMigrate && !*runDemo && !*runAll {
		log.Println("❌ Не выбрана ни одна операция.")
		log.Println("")
		log.Println("Доступные флаги:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Примеры использования:")
		log.Println("  go run ./seeders/cmd/seed -migrate")
		log.Println("  go run ./seeders/cmd/seed -all")
		log.Println("======================================================")
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	if *runAll || *runMigrate {
		db, err := sql.Open("pgx", cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("❌ Не удалось открыть соединение для миграций: %v", err)
		}
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatalf("❌ Не удалось выбрать диалект goose: %v", err)
		}
		if err := goose.Up(db, "migrations"); err != nil {
			log.Fatalf("❌ Ошибка применения миграций: %v", err)
		}
		db.Close()
		log.Println("✅ Миграции применены.")
		log.Println("======================================================")
	}

	if *runAll || *runDemo {
		dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
		defer dbPool.Close()
		seeders.SeedDemoData(dbPool)
		log.Println("======================================================")
	}

	log.Println("✅ Все указанные операции успешно завершены.")
	log.Println("======================================================")
}
